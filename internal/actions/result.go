package actions

import (
	gserrors "gitstrap.dev/gitstrap/internal/errors"
	"gitstrap.dev/gitstrap/internal/runtime"
	"gitstrap.dev/gitstrap/internal/shell"
)

// Result records what happened during one or more setup steps
type Result struct {
	// Declined is set when the operator declined to reinitialize
	Declined bool
	// Ran lists every external command in execution order
	Ran []string
	// Failed lists the commands that did not exit zero
	Failed []string
	// Written lists the files written, relative to the project directory
	Written []string
}

// run executes command through the context runner, reporting failures inline.
func (r *Result) run(ctx *runtime.Context, command string) bool {
	r.Ran = append(r.Ran, command)
	ok := shell.Try(ctx.Context, ctx.Runner, ctx.Splog, command)
	if !ok {
		r.Failed = append(r.Failed, command)
	}
	return ok
}

// Merge appends other's records to r
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Declined = r.Declined || other.Declined
	r.Ran = append(r.Ran, other.Ran...)
	r.Failed = append(r.Failed, other.Failed...)
	r.Written = append(r.Written, other.Written...)
}

// Err returns ErrDeclined when the operator declined to reinitialize
func (r *Result) Err() error {
	if r.Declined {
		return gserrors.ErrDeclined
	}
	return nil
}
