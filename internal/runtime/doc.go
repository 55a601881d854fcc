// Package runtime provides the execution context for gitstrap commands.
//
// It encapsulates shared dependencies needed by actions, such as the logger,
// the command runner, the profile, and the target project directory.
package runtime
