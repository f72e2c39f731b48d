package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Lookup errors
	LookupTableError

	// Wiki errors
	WikiRequestError
	WikiStatusError
	WikiDecodeError
	WikiAPIError

	// Finder errors
	FinderCancelledError
	BatchReadError
	BatchEmptyError

	// Export errors
	ExportCreateError
	ExportWriteError

	// Output errors
	OutputFormatError
	UnsupportedFileError
)
