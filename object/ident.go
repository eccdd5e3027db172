package object

import (
	"bytes"
	"debug/elf"

	"golang.org/x/crypto/cryptobyte"
)

// Ident is the decoded identification block of a master header.
type Ident struct {
	Magic      [4]byte
	Class      elf.Class
	Data       elf.Data
	Version    elf.Version
	OSABI      elf.OSABI
	ABIVersion uint8
}

// ParseIdent decodes the identification block. It reports false only
// when fewer than the fixed fields are present.
func ParseIdent(b []byte) (Ident, bool) {
	var id Ident
	s := cryptobyte.String(b)

	var magic []byte
	var class, data, version, osabi uint8
	if !s.ReadBytes(&magic, len(Magic)) ||
		!s.ReadUint8(&class) ||
		!s.ReadUint8(&data) ||
		!s.ReadUint8(&version) ||
		!s.ReadUint8(&osabi) ||
		!s.ReadUint8(&id.ABIVersion) {
		return Ident{}, false
	}

	copy(id.Magic[:], magic)
	id.Class = elf.Class(class)
	id.Data = elf.Data(data)
	id.Version = elf.Version(version)
	id.OSABI = elf.OSABI(osabi)
	return id, true
}

// ValidMagic reports whether the identification starts with Magic.
func (id Ident) ValidMagic() bool {
	return bytes.Equal(id.Magic[:], []byte(Magic))
}
