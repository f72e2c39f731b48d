package iofinder

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/pkg/errcode"
)

// CancelledError reports a search interrupted by context cancellation.
func CancelledError(name string, err error) error {
	msg := "Search for <em>%s</em> was cancelled"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.FinderCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: search for %s cancelled: %w", fn, name, err),
	}
}

// ReadNamesError reports a names file that cannot be read.
func ReadNamesError(path string, err error) error {
	msg := "Cannot read names from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BatchReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

// EmptyNamesError reports a names file without any names.
func EmptyNamesError(path string) error {
	msg := "No names found in <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BatchEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: file %s has no names", fn, path),
	}
}
