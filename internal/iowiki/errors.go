package iowiki

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/pkg/errcode"
)

// RequestError reports a request that could not be sent or received.
func RequestError(service string, err error) error {
	msg := "Cannot reach <em>%s</em>"
	vars := []any{service}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.WikiRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request to %s failed: %w", fn, service, err),
	}
}

// StatusError reports an unexpected HTTP status.
func StatusError(service string, status int) error {
	msg := "<em>%s</em> responded with HTTP status %d"
	vars := []any{service, status}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.WikiStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s returned status %d", fn, service, status),
	}
}

// DecodeError reports a response body that is not the expected JSON.
func DecodeError(service string, err error) error {
	msg := "Cannot decode response from <em>%s</em>"
	vars := []any{service}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.WikiDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode %s response: %w", fn, service, err),
	}
}

// APIError reports an error object returned by the MediaWiki API.
func APIError(service, code, info string) error {
	msg := "<em>%s</em> rejected the request: %s"
	vars := []any{service, info}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.WikiAPIError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s api error %s: %s", fn, service, code, info),
	}
}
