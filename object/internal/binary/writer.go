package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing of fixed-width fields in one byte order.
type Writer struct {
	order binary.ByteOrder
	buf   *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter(order binary.ByteOrder) *Writer {
	return &Writer{buf: &bytes.Buffer{}, order: order}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU16 writes a 2-byte unsigned integer.
func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// WriteU32 writes a 4-byte unsigned integer.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteU64 writes an 8-byte unsigned integer.
func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	w.order.PutUint64(b[:], v)
	w.buf.Write(b[:])
}
