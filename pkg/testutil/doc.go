// Package testutil seeds throwaway projects for tests.
//
// A Project is either purely in memory (afero) or backed by a temporary
// directory on disk. Both expose the same types.FS, so code under test
// cannot tell them apart.
package testutil
