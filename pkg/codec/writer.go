// Package codec implements the little-endian binary wire format shared by
// transactions and block headers: fixed-width integers, fixed-length byte
// runs, and a CompactSize variable-length count identical to Bitcoin's.
package codec

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates a wire-format encoding into an in-memory buffer.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// U8 appends a single byte.
func (w *Writer) U8(v uint8) {
	w.buf.WriteByte(v)
}

// U32 appends a little-endian uint32.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// I32 appends a little-endian int32.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// Bytes appends a fixed-length run of raw bytes, unframed.
func (w *Writer) Bytes(b []byte) {
	w.buf.Write(b)
}

// CompactSize appends n encoded as a Bitcoin-style CompactSize:
// literal for n <= 0xFC, 0xFD+u16LE, 0xFE+u32LE, or 0xFF+u64LE.
func (w *Writer) CompactSize(n uint64) {
	switch {
	case n <= 0xFC:
		w.U8(uint8(n))
	case n <= 0xFFFF:
		w.U8(0xFD)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		w.buf.Write(b[:])
	case n <= 0xFFFFFFFF:
		w.U8(0xFE)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		w.buf.Write(b[:])
	default:
		w.U8(0xFF)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], n)
		w.buf.Write(b[:])
	}
}

// VarBytes appends a CompactSize length prefix followed by b.
func (w *Writer) VarBytes(b []byte) {
	w.CompactSize(uint64(len(b)))
	w.buf.Write(b)
}

// Finish returns the accumulated encoding.
func (w *Writer) Finish() []byte {
	return w.buf.Bytes()
}
