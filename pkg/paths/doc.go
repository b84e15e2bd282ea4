// Package paths resolves the locations a build configuration depends on.
//
// Every location is derived from the project root (with symlinks resolved)
// and the [paths] section of the tool configuration:
//
//   - Build, Public, HTML, Src, NodeModules, YarnLock, ProxySetup: joined
//     onto the root as-is
//   - Entry and TestsSetup: module stems resolved through pkg/resolver, so
//     src/index becomes src/index.tsx, src/index.js, and so on
//   - PackageJSON: read and validated; a missing or malformed file aborts
//     the build before anything else is derived
//   - PublicURL and ServedPath: taken from PUBLIC_URL or the package
//     homepage
//
// TypeScript support is detected once here, from the presence of the
// tsconfig file, and the candidate extension list is narrowed accordingly.
package paths
