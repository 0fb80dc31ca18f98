// Package formlog captures form activity for the gateway console.
//
// This package defines the Logger interface and Event types for recording
// what happens while a settings form is open: the form being opened, field
// changes, the delay warning appearing or disappearing, submissions and
// validation failures. It is separate from operational logging (slog) and
// produces a machine-readable trace that can be replayed or analysed.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	logger := formlog.NewSlogAdapter(slog.Default())
//
//	// For auditing: write to a binary file
//	logger, _ := formlog.NewFileLogger("/var/log/console/forms.flog")
//
//	// Both: use MultiLogger
//	logger := formlog.NewMultiLogger(
//	    formlog.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use the .flog extension: a Header record naming the format and
// version, followed by a stream of CBOR-encoded events with integer keys.
// The gwconsole log command views and summarises them.
package formlog
