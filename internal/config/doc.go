// Package config manages gitstrap profiles.
//
// A profile carries every value gitstrap otherwise treats as fixed:
//   - Local git settings applied after `git init`
//   - Placeholder directories and their marker file
//   - The initial commit message
//   - The commands that install and register pre-commit
//   - The remote and branch used in the next-step hints
package config
