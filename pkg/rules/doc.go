// Package rules composes the asset pipeline: an ordered list of rules, each
// pairing a file predicate with a transformation strategy and an output
// naming template.
//
// # Rule Order
//
// Rules are evaluated in order and the first match wins:
//
//	1. media              *.{bmp,gif,jpg,jpeg,png}     inline below the size limit, else copy
//	2. app-script         *.{js,mjs,jsx[,ts,tsx]}      compile, only inside the source root
//	3. dependency-script  *.{js,mjs}                   compile, except @babel/runtime*
//	4. css                *.css                        styles, except *.module.css
//	5. css-module         *.module.css                 scoped styles
//	6. sass               *.{scss,sass}                styles, except *.module.*
//	7. sass-module        *.module.{scss,sass}         scoped styles
//	8. file               everything else              copy, except scripts, html, json
//
// Scripts, html and json files that reach the end of the list are left to
// the bundler's native handling and are reported with Handled == false.
//
// # Patterns
//
// Predicates use doublestar globs matched against slash-separated paths:
//
//   - `**/*.css` - any .css file at any depth
//   - `**/*.{scss,sass}` - alternatives
//   - `**/@babel/runtime*/**` - anything below @babel/runtime or a
//     variant such as @babel/runtime-corejs3
//   - `**` - catch-all
//
// Include roots restrict a rule to files below a directory.
//
// # Modes
//
// Production names carry content hashes and style sheets are extracted to
// files. Development names are stable and style sheets are injected at
// runtime. All mode decisions come from flags.FeatureFlags; Compose never
// looks at the environment.
package rules
