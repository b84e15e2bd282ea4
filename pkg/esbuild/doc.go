// Package esbuild translates a resolved build configuration into esbuild
// build options and can run the build.
//
// The translation is lossy. esbuild has no size-based inlining, no Sass
// support and no "everything else" loader, so those parts of the pipeline
// are approximated and reported as notes next to the options.
package esbuild
