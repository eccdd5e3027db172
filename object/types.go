package object

import (
	"debug/elf"
	"encoding/binary"
	"fmt"

	objbin "github.com/wippyai/objlink/object/internal/binary"
)

// Header is the master header at offset 0 of an object file.
type Header struct {
	Ident     [IdentSize]byte // file identification
	Type      uint16          // object file type
	Machine   uint16          // target architecture
	Version   uint32          // format version
	Entry     uint64          // entry point, unused by the decoder
	Phoff     uint64          // program header table offset, unused by the decoder
	Shoff     uint64          // section header table offset
	Flags     uint32          // processor-specific flags
	Ehsize    uint16          // header size
	Phentsize uint16          // program header entry size
	Phnum     uint16          // program header entry count
	Shentsize uint16          // section header entry size
	Shnum     uint16          // section header entry count
	Shstrndx  uint16          // index of the section name string table
}

// SectionHeader is one entry of the section-header table. Its position in
// the table is the section index.
type SectionHeader struct {
	Name      uint32 // offset of the name in the section name string table
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64 // file offset of the section contents
	Size      uint64 // size of the section contents in the file
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// TypeName returns the debug/elf name of the section type.
func (s *SectionHeader) TypeName() string {
	return elf.SectionType(s.Type).String()
}

// ByteOrder returns the byte order declared by the identification block.
// Anything other than an explicit big-endian marker is read as little
// endian.
func (h *Header) ByteOrder() binary.ByteOrder {
	if elf.Data(h.Ident[identData]) == elf.ELFDATA2MSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// decodeHeader decodes a HeaderSize buffer. The identification block is
// copied verbatim; the remaining fields use the order it declares.
func decodeHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) < HeaderSize {
		return h, fmt.Errorf("header buffer has %d bytes, want %d", len(buf), HeaderSize)
	}
	copy(h.Ident[:], buf[:IdentSize])

	r := objbin.NewReader(buf[IdentSize:HeaderSize], h.ByteOrder())
	var err error
	read16 := func(dst *uint16) {
		if err == nil {
			*dst, err = r.ReadU16()
		}
	}
	read32 := func(dst *uint32) {
		if err == nil {
			*dst, err = r.ReadU32()
		}
	}
	read64 := func(dst *uint64) {
		if err == nil {
			*dst, err = r.ReadU64()
		}
	}

	read16(&h.Type)
	read16(&h.Machine)
	read32(&h.Version)
	read64(&h.Entry)
	read64(&h.Phoff)
	read64(&h.Shoff)
	read32(&h.Flags)
	read16(&h.Ehsize)
	read16(&h.Phentsize)
	read16(&h.Phnum)
	read16(&h.Shentsize)
	read16(&h.Shnum)
	read16(&h.Shstrndx)
	if err != nil {
		return h, r.WrapError("header", err)
	}
	return h, nil
}

// decodeSectionHeaders decodes count consecutive entries from buf.
func decodeSectionHeaders(buf []byte, count int, order binary.ByteOrder) ([]SectionHeader, error) {
	r := objbin.NewReader(buf, order)
	sections := make([]SectionHeader, count)
	for i := range sections {
		s := &sections[i]
		var err error
		if s.Name, err = r.ReadU32(); err == nil {
			s.Type, err = r.ReadU32()
		}
		if err == nil {
			s.Flags, err = r.ReadU64()
		}
		if err == nil {
			s.Addr, err = r.ReadU64()
		}
		if err == nil {
			s.Offset, err = r.ReadU64()
		}
		if err == nil {
			s.Size, err = r.ReadU64()
		}
		if err == nil {
			s.Link, err = r.ReadU32()
		}
		if err == nil {
			s.Info, err = r.ReadU32()
		}
		if err == nil {
			s.Addralign, err = r.ReadU64()
		}
		if err == nil {
			s.Entsize, err = r.ReadU64()
		}
		if err != nil {
			return nil, r.WrapError(fmt.Sprintf("section header %d", i), err)
		}
	}
	return sections, nil
}
