// Package output provides styled terminal output utilities for fsdist.
//
// It wraps charmbracelet/log for structured logging and charmbracelet/lipgloss
// for styled output. Commands report through this package rather than
// fmt.Println so that --json and NO_COLOR behave the same everywhere.
//
// Features:
//   - Styled logging with prefixes (Info, Warn, Error, Debug)
//   - JSON output mode for scripting (--json flag)
//   - NO_COLOR environment variable support
//   - Verbose/debug mode via -v flag
package output
