package cmd

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/pkg/errcode"
)

// FormatError reports an output format that is not supported.
func FormatError(format string) error {
	msg := "Unknown output format <em>%s</em>"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown output format %s", fn, format),
	}
}

// EncodeError reports a record that cannot be encoded.
func EncodeError(title string, err error) error {
	msg := "Cannot encode <em>%s</em>"
	vars := []any{title}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot encode %s: %w", fn, title, err),
	}
}

// UnsupportedFileError reports a file that is not an accepted image.
func UnsupportedFileError(file string) error {
	msg := "File <em>%s</em> is not a png, jpg, jpeg or gif image"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.UnsupportedFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unsupported file type: %s", fn, file),
	}
}
