// Package wire implements the byte-level primitives of Bot API file ids:
// little-endian integers, TL strings, zero run-length compression and
// URL-safe base64.
package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/gotd/td/bin"
)

var (
	ErrTruncated = errors.New("input is truncated")
	ErrMalformed = errors.New("input is malformed")
)

const (
	longStringMarker = 254
	maxLongString    = 1<<24 - 1
)

// Reader is a forward-only cursor over a byte slice. It is not safe for
// concurrent use; every decode owns its own Reader.
type Reader struct {
	buf bin.Buffer
}

func NewReader(data []byte) *Reader {
	return &Reader{buf: bin.Buffer{Buf: data}}
}

// Len reports how many bytes have not been consumed yet.
func (r *Reader) Len() int {
	return len(r.buf.Buf)
}

func (r *Reader) Uint32() (uint32, error) {
	v, err := r.buf.Uint32()
	return v, wrapRead(err, "uint32")
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.buf.Int32()
	return v, wrapRead(err, "int32")
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.buf.Long()
	return v, wrapRead(err, "int64")
}

// Bytes reads a TL string and skips its padding. The returned slice does
// not alias the underlying buffer.
func (r *Reader) Bytes() ([]byte, error) {
	data := r.buf.Buf
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: reading string length", ErrTruncated)
	}

	prefix := 1
	size := int(data[0])
	if size > longStringMarker {
		return nil, fmt.Errorf("%w: string length byte %d", ErrMalformed, size)
	}
	if size == longStringMarker {
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: reading long string length", ErrTruncated)
		}
		prefix = 4
		size = int(data[1]) | int(data[2])<<8 | int(data[3])<<16
	}

	total := prefix + size + Padding(prefix+size)
	if len(data) < total {
		return nil, fmt.Errorf("%w: string of %d bytes needs %d, have %d", ErrTruncated, size, total, len(data))
	}

	value := make([]byte, size)
	copy(value, data[prefix:prefix+size])
	r.buf.Buf = data[total:]
	return value, nil
}

func (r *Reader) String() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Padding returns the number of zero bytes needed to align n to 4.
func Padding(n int) int {
	return posmod(-n, 4)
}

func posmod(a, b int) int {
	rem := a % b
	if rem < 0 {
		rem += b
	}
	return rem
}

func wrapRead(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncated, what)
	}
	return fmt.Errorf("%w: reading %s: %w", ErrMalformed, what, err)
}

// Writer accumulates the little-endian encoding of a file id.
type Writer struct {
	buf bin.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) PutUint32(v uint32) {
	w.buf.PutUint32(v)
}

func (w *Writer) PutInt32(v int32) {
	w.buf.PutInt32(v)
}

func (w *Writer) PutInt64(v int64) {
	w.buf.PutLong(v)
}

func (w *Writer) PutByte(v byte) {
	w.buf.Put([]byte{v})
}

// PutBytes writes v as a padded TL string.
func (w *Writer) PutBytes(v []byte) error {
	if len(v) > maxLongString {
		return fmt.Errorf("%w: string of %d bytes exceeds %d", ErrMalformed, len(v), maxLongString)
	}
	w.buf.PutBytes(v)
	return nil
}

func (w *Writer) PutString(s string) error {
	return w.PutBytes([]byte(s))
}

// Raw returns the bytes written so far.
func (w *Writer) Raw() []byte {
	return w.buf.Buf
}
