// Package config defines toolver settings and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type holds the reported release lines, the git lookup backend
// and the log level.
package config
