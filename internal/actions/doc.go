// Package actions provides the setup steps behind gitstrap's commands.
//
// Each action corresponds to a gitstrap command (init, hooks, ci, doctor)
// and orchestrates external commands and file writes for one project.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog, Runner and Profile
//   - A failing external command is reported and recorded in the Result,
//     never returned; the next step runs regardless
//   - Only problems that make a step impossible (unwritable files) are
//     returned as errors
package actions
