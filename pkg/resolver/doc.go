// Package resolver finds the file behind a logical module name.
//
// A module name is a path stem without extension, such as "src/index". The
// resolver appends each candidate extension in priority order and returns
// the first file that exists. When none exists it returns the stem with the
// default ".js" extension without probing it, so the caller always receives
// a path and the "module not found" failure surfaces later, at the compiler,
// with that path as evidence.
//
//	exts := resolver.DefaultExtensions().ForTypeScript(hasTSConfig)
//	entry := resolver.Resolve(fsys, filepath.Join(root, "src/index"), exts)
//	entry.Path    // /app/src/index.tsx
//	entry.Found   // true
package resolver
