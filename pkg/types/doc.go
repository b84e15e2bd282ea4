// Package types defines the small vocabulary shared by every buildplan
// package: the build Mode, the pipeline Strategy enum, the Asset offered for
// classification and the FS abstraction used for all filesystem probes.
package types
