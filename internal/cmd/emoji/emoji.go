// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used for status indicators in tables and summaries.
const (
	// Success marks a completed run or a STIG that received review results.
	Success = "✓"

	// Error marks a failed run.
	Error = "✗"

	// Warning marks a STIG or entry that was skipped.
	Warning = "!"

	// Optional marks a STIG with nothing to propagate.
	Optional = "-"

	// Info marks informational lines.
	Info = "i"
)
