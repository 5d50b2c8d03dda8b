package fileid

import (
	"errors"
	"fmt"

	"botfileid/pkg/fileid/internal/wire"
)

var (
	ErrMalformedEncoding      = wire.ErrMalformed
	ErrTruncatedInput         = wire.ErrTruncated
	ErrUnknownFileType        = errors.New("unknown file type")
	ErrUnknownPhotoSizeSource = errors.New("unknown photo size source")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidCombination     = errors.New("invalid field combination")
)

type UnknownTypeError struct {
	Value uint32
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownFileType, e.Value)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownFileType
}

type UnknownSourceError struct {
	Value uint32
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownPhotoSizeSource, e.Value)
}

func (e *UnknownSourceError) Unwrap() error {
	return ErrUnknownPhotoSizeSource
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCombination, fmt.Sprintf(format, args...))
}
