// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger writing console-encoded entries to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - a DebugKV convenience function for structured debug entries.
//
// Standard output is left to command results, so piping `toolver info -o json`
// never mixes log lines into the document.
package logger
