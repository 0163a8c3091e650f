// Package version contains information on the current version of the
// toolkit. It is split out on its own so that other packages can report it
// in diagnostics without importing anything heavier.
package version

// Current is the string representing the current version of the toolkit.
const Current = "0.1.0"
