// Package javaio reads and writes the primitive encodings used by the
// upstream Egothor/Stempel binary table format: big-endian integers, UTF-16
// code units and length-prefixed modified UTF-8 (CESU-8) strings, the same
// way java.io.DataInput/DataOutput does.
package javaio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/xerrors"
)

// ErrInvalidData is wrapped into every error returned because the byte
// stream was structurally wrong rather than because the underlying reader
// or writer failed. Callers can test for it with errors.Is.
var ErrInvalidData = xerrors.New("javaio: invalid data")

func invalidData(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidData)
}

// Invalid builds an ErrInvalidData-wrapped error for callers outside this
// package, such as trie table validation after a load.
func Invalid(format string, args ...interface{}) error {
	return invalidData(format, args...)
}

// Reader wraps an io.Reader with the primitive decoders below as methods, so
// callers reading a whole table don't have to thread the io.Reader through
// every free function call themselves.
type Reader struct {
	r io.Reader
}

// NewReader wraps r for use with the primitive decoders.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

func (d *Reader) ReadBool() (bool, error)             { return ReadBool(d.r) }
func (d *Reader) ReadInt32() (int32, error)           { return ReadInt32(d.r) }
func (d *Reader) ReadUint32() (uint32, error)         { return ReadUint32(d.r) }
func (d *Reader) ReadUint32Opt() (uint32, bool, error) { return ReadUint32Opt(d.r) }
func (d *Reader) ReadUsize() (int, error)             { return ReadUsize(d.r) }
func (d *Reader) ReadChar() (rune, error)              { return ReadChar(d.r) }
func (d *Reader) ReadString() (string, error)          { return ReadString(d.r) }

// Writer wraps an io.Writer with the primitive encoders below as methods.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for use with the primitive encoders.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (e *Writer) WriteBool(v bool) error                    { return WriteBool(e.w, v) }
func (e *Writer) WriteInt32(v int32) error                  { return WriteInt32(e.w, v) }
func (e *Writer) WriteUint32(v uint32) error                { return WriteUint32(e.w, v) }
func (e *Writer) WriteUint32Opt(v uint32, present bool) error { return WriteUint32Opt(e.w, v, present) }
func (e *Writer) WriteUsize(v int) error                    { return WriteUsize(e.w, v) }
func (e *Writer) WriteChar(v rune) error                    { return WriteChar(e.w, v) }
func (e *Writer) WriteString(s string) error                { return WriteString(e.w, s) }

// ReadBool reads one byte; zero is false, anything else is true.
func ReadBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// WriteBool writes a single boolean byte.
func WriteBool(w io.Writer, v bool) error {
	var b byte
	if v {
		b = 1
	}
	_, err := w.Write([]byte{b})
	return err
}

// ReadInt32 reads four big-endian bytes as a signed 32-bit integer.
func ReadInt32(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

// WriteInt32 writes a signed 32-bit integer as four big-endian bytes.
func WriteInt32(w io.Writer, v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

// ReadUint32 reads a signed 32-bit big-endian integer and rejects negative
// values as invalid data.
func ReadUint32(r io.Reader) (uint32, error) {
	v, err := ReadInt32(r)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, invalidData("negative length/index %d", v)
	}
	return uint32(v), nil
}

// WriteUint32 writes v as a signed 32-bit big-endian integer.
func WriteUint32(w io.Writer, v uint32) error {
	if v > math.MaxInt32 {
		return invalidData("value %d does not fit in a signed 32-bit field", v)
	}
	return WriteInt32(w, int32(v))
}

// ReadUint32Opt reads a signed 32-bit big-endian integer, treating -1 (or
// any negative value) as "absent".
func ReadUint32Opt(r io.Reader) (val uint32, present bool, err error) {
	v, err := ReadInt32(r)
	if err != nil {
		return 0, false, err
	}
	if v < 0 {
		return 0, false, nil
	}
	return uint32(v), true, nil
}

// WriteUint32Opt writes -1 for an absent value, else the value itself.
func WriteUint32Opt(w io.Writer, val uint32, present bool) error {
	if !present {
		return WriteInt32(w, -1)
	}
	if val > math.MaxInt32 {
		return invalidData("value %d does not fit in a signed 32-bit field", val)
	}
	return WriteInt32(w, int32(val))
}

// ReadUsize reads ReadUint32 narrowed to the platform int width.
func ReadUsize(r io.Reader) (int, error) {
	v, err := ReadUint32(r)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// WriteUsize writes v, which must be non-negative and fit in uint32.
func WriteUsize(w io.Writer, v int) error {
	if v < 0 {
		return invalidData("negative length %d", v)
	}
	return WriteUint32(w, uint32(v))
}

// ReadChar reads a single UTF-16 code unit and decodes it to a rune. An
// unpaired surrogate half is invalid data.
func ReadChar(r io.Reader) (rune, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	u := binary.BigEndian.Uint16(b[:])
	if isSurrogate(u) {
		return 0, invalidData("unpaired UTF-16 surrogate %#x", u)
	}
	return rune(u), nil
}

// WriteChar writes v as a single big-endian UTF-16 code unit. v must encode
// to exactly one code unit (i.e. must not require a surrogate pair).
func WriteChar(w io.Writer, v rune) error {
	if v > 0xFFFF || isSurrogate(uint16(v)) {
		return invalidData("rune %U does not fit in a single UTF-16 code unit", v)
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])
	return err
}

func isSurrogate(u uint16) bool {
	return u >= 0xD800 && u <= 0xDFFF
}

// ReadString reads a two-byte length prefix followed by that many bytes of
// modified UTF-8 (CESU-8).
func ReadString(r io.Reader) (string, error) {
	var lb [2]byte
	if _, err := io.ReadFull(r, lb[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lb[:])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	s, err := decodeModifiedUTF8(buf)
	if err != nil {
		return "", invalidData("bad modified UTF-8 string: %v", err)
	}
	return s, nil
}

// WriteString writes s as a two-byte length prefix followed by its modified
// UTF-8 (CESU-8) encoding.
func WriteString(w io.Writer, s string) error {
	enc := encodeModifiedUTF8(s)
	if len(enc) > math.MaxUint16 {
		return invalidData("string encodes to %d bytes, exceeds uint16 length prefix", len(enc))
	}
	var lb [2]byte
	binary.BigEndian.PutUint16(lb[:], uint16(len(enc)))
	if _, err := w.Write(lb[:]); err != nil {
		return err
	}
	if len(enc) == 0 {
		return nil
	}
	_, err := w.Write(enc)
	return err
}
