package fileid

import "errors"

// UniqueEncoder derives the unique file id, a shorter identifier that is
// stable across bots and file references. Implementations live outside this
// package.
type UniqueEncoder interface {
	EncodeUnique(f FileID) (string, error)
}

// UniqueEncoderFunc adapts a function to UniqueEncoder.
type UniqueEncoderFunc func(f FileID) (string, error)

func (fn UniqueEncoderFunc) EncodeUnique(f FileID) (string, error) {
	return fn(f)
}

// Unique returns the unique file id of f as computed by enc.
func (f FileID) Unique(enc UniqueEncoder) (string, error) {
	if enc == nil {
		return "", errors.New("no unique file id encoder")
	}
	return enc.EncodeUnique(f)
}
