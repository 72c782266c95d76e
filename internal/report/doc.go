// Package report gathers build, commit and release-line information into a
// Report and renders it as a text table, YAML or JSON.
package report
