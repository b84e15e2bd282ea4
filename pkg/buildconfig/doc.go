// Package buildconfig assembles the complete, immutable build configuration
// for one mode: resolved paths, feature flags, the asset pipeline, output
// naming, module resolution and the descriptors of the collaborators the
// bundler would run.
//
// Build performs every probe up front. The returned BuildConfig is never
// modified afterwards and may be shared between goroutines.
package buildconfig
