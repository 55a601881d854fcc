// Package tui provides the terminal surface of gitstrap.
//
// It handles:
//   - The reinitialize confirmation (using survey on a terminal)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
