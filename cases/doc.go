// Package cases registers the bundled corpus of runnable cases.
// Importing it (usually blank, for the side effect) makes the cases
// discoverable by the harness commands.
package cases
