package object

import (
	"debug/elf"
	"os"
	"path/filepath"
	"testing"
)

// image is a synthetic object file: header, section table at offset 64,
// then the section name string table.
type image struct {
	hdr      Header
	sections []SectionHeader
	strtab   []byte
	tabOff   int
	strOff   int
}

// newImage builds an image whose last section is the section name string
// table. An empty name gets offset 0, which points at the leading NUL.
func newImage(data elf.Data, names ...string) *image {
	img := &image{strtab: []byte{0}}
	img.sections = make([]SectionHeader, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		img.sections[i].Name = uint32(len(img.strtab))
		img.sections[i].Type = uint32(elf.SHT_PROGBITS)
		img.strtab = append(img.strtab, name...)
		img.strtab = append(img.strtab, 0)
	}

	img.tabOff = HeaderSize
	img.strOff = img.tabOff + len(names)*SectionHeaderSize

	last := &img.sections[len(names)-1]
	last.Type = uint32(elf.SHT_STRTAB)
	last.Offset = uint64(img.strOff)
	last.Size = uint64(len(img.strtab))

	copy(img.hdr.Ident[:], Magic)
	img.hdr.Ident[4] = byte(elf.ELFCLASS64)
	img.hdr.Ident[identData] = byte(data)
	img.hdr.Ident[6] = byte(elf.EV_CURRENT)
	img.hdr.Type = uint16(elf.ET_REL)
	img.hdr.Machine = uint16(elf.EM_X86_64)
	img.hdr.Version = uint32(elf.EV_CURRENT)
	img.hdr.Shoff = uint64(img.tabOff)
	img.hdr.Ehsize = HeaderSize
	img.hdr.Shentsize = SectionHeaderSize
	img.hdr.Shnum = uint16(len(names))
	img.hdr.Shstrndx = uint16(len(names) - 1)
	return img
}

// bytes lays the image out at its original offsets, so header edits do
// not move any contents.
func (img *image) bytes() []byte {
	buf := make([]byte, img.strOff+len(img.strtab))
	copy(buf, img.hdr.Encode())
	copy(buf[img.tabOff:], img.hdr.EncodeSectionHeaders(img.sections))
	copy(buf[img.strOff:], img.strtab)
	return buf
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.o")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestEncodedSizes(t *testing.T) {
	img := newImage(elf.ELFDATA2LSB, ".text", ".shstrtab")
	if got := len(img.hdr.Encode()); got != HeaderSize {
		t.Errorf("encoded header: got %d bytes, want %d", got, HeaderSize)
	}
	if got := len(img.hdr.EncodeSectionHeaders(img.sections)); got != 2*SectionHeaderSize {
		t.Errorf("encoded table: got %d bytes, want %d", got, 2*SectionHeaderSize)
	}
}

func TestDecodeHeaderRoundTrip(t *testing.T) {
	for _, data := range []elf.Data{elf.ELFDATA2LSB, elf.ELFDATA2MSB} {
		img := newImage(data, ".text", ".shstrtab")
		img.hdr.Entry = 0x1122334455667788
		img.hdr.Flags = 0xA5A5

		got, err := decodeHeader(img.hdr.Encode())
		if err != nil {
			t.Fatalf("%v: decodeHeader: %v", data, err)
		}
		if got != img.hdr {
			t.Errorf("%v: decoded header %+v, want %+v", data, got, img.hdr)
		}
	}
}

func TestDecodeHeaderShortBuffer(t *testing.T) {
	if _, err := decodeHeader(make([]byte, HeaderSize-1)); err == nil {
		t.Error("expected error for short header buffer")
	}
}

func TestParseIdent(t *testing.T) {
	img := newImage(elf.ELFDATA2MSB, ".shstrtab")
	img.hdr.Ident[7] = byte(elf.ELFOSABI_LINUX)
	img.hdr.Ident[8] = 3

	id, ok := ParseIdent(img.hdr.Ident[:])
	if !ok {
		t.Fatal("ParseIdent failed on a full identification block")
	}
	if !id.ValidMagic() {
		t.Errorf("ValidMagic: got false for %q", id.Magic)
	}
	if id.Class != elf.ELFCLASS64 {
		t.Errorf("Class: got %v, want ELFCLASS64", id.Class)
	}
	if id.Data != elf.ELFDATA2MSB {
		t.Errorf("Data: got %v, want ELFDATA2MSB", id.Data)
	}
	if id.OSABI != elf.ELFOSABI_LINUX {
		t.Errorf("OSABI: got %v, want ELFOSABI_LINUX", id.OSABI)
	}
	if id.ABIVersion != 3 {
		t.Errorf("ABIVersion: got %d, want 3", id.ABIVersion)
	}

	if _, ok := ParseIdent([]byte("\x7fELF\x02")); ok {
		t.Error("ParseIdent should fail on a short block")
	}

	bad, _ := ParseIdent([]byte("XYZ\x00\x02\x01\x01\x00\x00"))
	if bad.ValidMagic() {
		t.Error("ValidMagic: got true for XYZ")
	}
}

func TestStringTableLookup(t *testing.T) {
	tab := StringTable("\x00.text\x00.data\x00.bss")

	tests := []struct {
		name string
		off  uint32
		want string
		ok   bool
	}{
		{"leading nul", 0, "", false},
		{"first name", 1, ".text", true},
		{"second name", 7, ".data", true},
		{"suffix of a name", 3, "ext", true},
		{"terminator", 6, "", false},
		{"unterminated tail", 13, ".bss", true},
		{"one past end", uint32(len(tab)), "", false},
		{"far past end", 1 << 31, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tab.Lookup(tt.off)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%d) = %q, %v; want %q, %v", tt.off, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveNamesContinuesPastInvalid(t *testing.T) {
	tab := StringTable("\x00.text\x00.data\x00")
	sections := []SectionHeader{
		{Name: 1},
		{Name: 500},
		{Name: 0},
		{Name: 7},
	}

	names := resolveNames(sections, tab)
	want := []struct {
		name  string
		valid bool
	}{
		{".text", true},
		{InvalidName, false},
		{InvalidName, false},
		{".data", true},
	}

	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i, w := range want {
		if names[i].Index != i {
			t.Errorf("names[%d].Index = %d", i, names[i].Index)
		}
		if names[i].Name != w.name || names[i].Valid != w.valid {
			t.Errorf("names[%d] = %q (valid %v), want %q (valid %v)",
				i, names[i].Name, names[i].Valid, w.name, w.valid)
		}
		if !w.valid && names[i].Diagnostic == "" {
			t.Errorf("names[%d] has no diagnostic", i)
		}
		if w.valid && names[i].Diagnostic != "" {
			t.Errorf("names[%d] has unexpected diagnostic %q", i, names[i].Diagnostic)
		}
	}
}
