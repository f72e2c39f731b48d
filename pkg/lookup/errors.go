package lookup

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/pkg/errcode"
)

// TableError reports a keyword table that cannot be decoded.
func TableError(err error) error {
	msg := "Cannot load image keyword table"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.LookupTableError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot decode keyword table: %w", fn, err),
	}
}
