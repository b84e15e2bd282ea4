package types

// Asset describes a file offered to the pipeline for classification
type Asset struct {
	// Path is the file location, absolute or relative to the project root
	Path string

	// Size is the file size in bytes
	Size int64

	// Hash is the hex content digest used by hashed output names.
	// An empty hash renders hash placeholders as empty strings.
	Hash string
}
