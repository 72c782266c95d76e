// Package inspect implements the toolver commands: listing release lines,
// parsing version text and reporting build and commit information.
package inspect
