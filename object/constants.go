package object

import "unsafe"

// Magic is the identification prefix of every object file.
const Magic = "\x7fELF"

// On-disk record sizes.
const (
	HeaderSize        = 64 // master header
	SectionHeaderSize = 64 // one section-header table entry
	IdentSize         = 16 // identification block at the start of the header
)

// The Go records mirror the on-disk layout with no implicit padding.
// A layout change makes one of these array lengths negative and stops
// the build.
var (
	_ [HeaderSize - unsafe.Sizeof(Header{})]struct{}
	_ [unsafe.Sizeof(Header{}) - HeaderSize]struct{}
	_ [SectionHeaderSize - unsafe.Sizeof(SectionHeader{})]struct{}
	_ [unsafe.Sizeof(SectionHeader{}) - SectionHeaderSize]struct{}
)

// identData is the index of the data encoding byte in the identification block.
const identData = 5

// DefaultMaxSections bounds the section-header count accepted from a
// file before any table allocation happens.
const DefaultMaxSections = 10000

// InvalidName replaces a section name that cannot be resolved.
const InvalidName = "<invalid>"
