// Package git inspects the repository gitstrap creates.
//
// Mutations always go through the git command line (see package shell) so the
// operator's git does the work; reading back state uses go-git.
package git
