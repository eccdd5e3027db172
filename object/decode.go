package object

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/objlink/errors"
)

// Config holds configuration for a decode call
type Config struct {
	// MaxSections caps the section-header count taken from the file.
	// 0 means DefaultMaxSections.
	MaxSections int
}

func (c *Config) maxSections() int {
	if c == nil || c.MaxSections <= 0 {
		return DefaultMaxSections
	}
	return c.MaxSections
}

// Report is the result of one decode call.
type Report struct {
	ByteOrder binary.ByteOrder
	Path      string
	Sections  []SectionHeader
	Names     []ResolvedSection
	Header    Header
	Ident     Ident
}

// Diagnostics returns the per-section diagnostics in table order.
func (r *Report) Diagnostics() []string {
	var out []string
	for i := range r.Names {
		if !r.Names[i].Valid {
			out = append(out, r.Names[i].Diagnostic)
		}
	}
	return out
}

// Decode reads the object file at path with the default configuration.
func Decode(path string) (*Report, error) {
	return DecodeWithConfig(path, nil)
}

// DecodeWithConfig reads the object file at path. The file is closed
// before returning on every path.
func DecodeWithConfig(path string, cfg *Config) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.CannotOpen(path, err)
	}
	defer f.Close()

	rep, err := decodeFile(f, path, cfg)
	if err != nil {
		return nil, err
	}
	rep.Path = path
	return rep, nil
}

// decodeFile decodes an open file. Only regular files report a size that
// bounds their contents; anything else is read into memory first.
func decodeFile(f *os.File, path string, cfg *Config) (*Report, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, errors.CannotOpen(path, err)
	}
	if fi.Mode().IsRegular() {
		return newDecoder(f, fi.Size(), cfg).decode()
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.CannotOpen(path, err)
	}
	Logger().Debug("read non-regular file into memory",
		zap.String("path", path),
		zap.Stringer("mode", fi.Mode()),
		zap.Int("size", len(data)))
	return DecodeBytesWithConfig(data, cfg)
}

// DecodeBytes decodes an in-memory object file image.
func DecodeBytes(data []byte) (*Report, error) {
	return DecodeBytesWithConfig(data, nil)
}

// DecodeBytesWithConfig decodes an in-memory object file image.
func DecodeBytesWithConfig(data []byte, cfg *Config) (*Report, error) {
	return newDecoder(bytes.NewReader(data), int64(len(data)), cfg).decode()
}

type decoder struct {
	r           io.ReaderAt
	log         *zap.Logger
	size        int64
	maxSections int
}

func newDecoder(r io.ReaderAt, size int64, cfg *Config) *decoder {
	return &decoder{
		r:           r,
		size:        size,
		maxSections: cfg.maxSections(),
		log:         Logger(),
	}
}

// decode runs the gated pipeline. Each read is checked against the
// bounds established by the gate right before it.
func (d *decoder) decode() (*Report, error) {
	buf, err := d.readAt(0, HeaderSize, errors.KindTruncatedHeader, "header")
	if err != nil {
		return nil, err
	}

	id, ok := ParseIdent(buf[:IdentSize])
	if !ok || !id.ValidMagic() {
		return nil, errors.BadMagic(buf[:len(Magic)])
	}

	hdr, err := decodeHeader(buf)
	if err != nil {
		return nil, errors.Truncated(errors.KindTruncatedHeader, "header", HeaderSize, int64(len(buf)), err)
	}
	if err := d.checkHeader(&hdr); err != nil {
		return nil, err
	}

	order := hdr.ByteOrder()
	count := int(hdr.Shnum)
	d.log.Debug("header decoded",
		zap.Stringer("class", id.Class),
		zap.Stringer("data", id.Data),
		zap.Uint64("shoff", hdr.Shoff),
		zap.Int("shnum", count),
		zap.Uint16("shstrndx", hdr.Shstrndx))

	table, err := d.readAt(hdr.Shoff, uint64(count)*SectionHeaderSize, errors.KindTruncatedSectionTable, "section table")
	if err != nil {
		return nil, err
	}
	sections, err := decodeSectionHeaders(table, count, order)
	if err != nil {
		return nil, errors.Truncated(errors.KindTruncatedSectionTable, "section table",
			int64(count)*SectionHeaderSize, int64(len(table)), err)
	}

	// Shstrndx < Shnum was checked by checkHeader.
	strhdr := &sections[hdr.Shstrndx]
	if strhdr.Size == 0 {
		return nil, errors.EmptyStringTable(int(hdr.Shstrndx))
	}

	blob, err := d.readAt(strhdr.Offset, strhdr.Size, errors.KindTruncatedStringTable, "string table")
	if err != nil {
		return nil, err
	}

	names := resolveNames(sections, StringTable(blob))
	d.log.Debug("sections resolved", zap.Int("count", len(names)))

	return &Report{
		Header:    hdr,
		Ident:     id,
		ByteOrder: order,
		Sections:  sections,
		Names:     names,
	}, nil
}

// checkHeader applies the header sanity and count-bound gates.
func (d *decoder) checkHeader(h *Header) error {
	switch {
	case h.Shoff == 0:
		return errors.InvalidSectionInfo("section header table offset is zero")
	case h.Shnum == 0:
		return errors.InvalidSectionInfo("section header count is zero")
	case h.Shstrndx >= h.Shnum:
		return errors.InvalidSectionInfo(fmt.Sprintf(
			"string table index %d >= section count %d", h.Shstrndx, h.Shnum))
	}

	if int(h.Shnum) > d.maxSections {
		return errors.UnreasonableSectionCount(int(h.Shnum), d.maxSections)
	}

	if h.Shentsize != SectionHeaderSize {
		d.log.Warn("unexpected section header entry size",
			zap.Uint16("shentsize", h.Shentsize),
			zap.Int("want", SectionHeaderSize))
	}
	return nil
}

// readAt reads exactly n bytes at off. The range is checked against the
// file size before anything is allocated, so a corrupt length cannot
// force a large allocation.
func (d *decoder) readAt(off, n uint64, kind errors.Kind, stage string) ([]byte, error) {
	size := uint64(d.size)
	if off > size || n > size-off {
		avail := int64(0)
		if off < size {
			avail = int64(size - off)
		}
		return nil, errors.New(errors.ClassIO, kind).
			Stage(stage).
			Value(avail).
			Detail("want %d bytes at offset %d, file has %d", n, off, d.size).
			Cause(io.ErrUnexpectedEOF).
			Build()
	}

	buf := make([]byte, n)
	got, err := io.ReadFull(io.NewSectionReader(d.r, int64(off), int64(n)), buf)
	if err != nil {
		return nil, errors.Truncated(kind, stage, int64(n), int64(got), err)
	}
	return buf, nil
}
