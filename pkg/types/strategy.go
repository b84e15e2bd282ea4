package types

// Strategy is the transformation applied to a file matched by a pipeline rule
type Strategy string

const (
	// StrategyInlineEncode embeds the file into the bundle as a data URI
	StrategyInlineEncode Strategy = "inline"

	// StrategyCompile runs the file through the source compiler
	StrategyCompile Strategy = "compile"

	// StrategyCopyVerbatim emits the file unchanged under its output name
	StrategyCopyVerbatim Strategy = "copy"

	// StrategyExtractStyles processes a style sheet and extracts or injects it
	StrategyExtractStyles Strategy = "extract-styles"
)

// AllStrategies lists every strategy in declaration order
var AllStrategies = []Strategy{
	StrategyInlineEncode,
	StrategyCompile,
	StrategyCopyVerbatim,
	StrategyExtractStyles,
}

// String returns the strategy identifier
func (s Strategy) String() string {
	return string(s)
}

// WritesFile reports whether applying the strategy produces a file of its own
// in the output directory. Inline and compiled files end up inside a bundle.
func (s Strategy) WritesFile() bool {
	return s == StrategyCopyVerbatim || s == StrategyExtractStyles
}
