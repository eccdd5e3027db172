package object

import (
	objbin "github.com/wippyai/objlink/object/internal/binary"
)

// Encode returns the HeaderSize on-disk form of the header in the byte
// order its identification block declares.
func (h *Header) Encode() []byte {
	w := objbin.NewWriter(h.ByteOrder())
	w.WriteBytes(h.Ident[:])
	w.WriteU16(h.Type)
	w.WriteU16(h.Machine)
	w.WriteU32(h.Version)
	w.WriteU64(h.Entry)
	w.WriteU64(h.Phoff)
	w.WriteU64(h.Shoff)
	w.WriteU32(h.Flags)
	w.WriteU16(h.Ehsize)
	w.WriteU16(h.Phentsize)
	w.WriteU16(h.Phnum)
	w.WriteU16(h.Shentsize)
	w.WriteU16(h.Shnum)
	w.WriteU16(h.Shstrndx)
	return w.Bytes()
}

// EncodeSectionHeaders returns the on-disk form of a section-header table
// in the byte order declared by h.
func (h *Header) EncodeSectionHeaders(sections []SectionHeader) []byte {
	w := objbin.NewWriter(h.ByteOrder())
	for i := range sections {
		s := &sections[i]
		w.WriteU32(s.Name)
		w.WriteU32(s.Type)
		w.WriteU64(s.Flags)
		w.WriteU64(s.Addr)
		w.WriteU64(s.Offset)
		w.WriteU64(s.Size)
		w.WriteU32(s.Link)
		w.WriteU32(s.Info)
		w.WriteU64(s.Addralign)
		w.WriteU64(s.Entsize)
	}
	return w.Bytes()
}
