package object

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"
)

// StringTable is the raw contents of a string table section: NUL
// terminated names addressed by byte offset.
type StringTable []byte

// Lookup returns the name starting at off. It reports false when off is
// outside the table or the name there is empty. A name without a
// terminator runs to the end of the table.
func (t StringTable) Lookup(off uint32) (string, bool) {
	if uint64(off) >= uint64(len(t)) || t[off] == 0 {
		return "", false
	}
	run := t[off:]
	if n := bytes.IndexByte(run, 0); n >= 0 {
		run = run[:n]
	}
	return string(run), true
}

// ResolvedSection pairs a section index with its resolved name.
type ResolvedSection struct {
	Name       string // resolved name, or InvalidName
	Diagnostic string // set when Valid is false
	Index      int
	Valid      bool
}

// resolveNames resolves every section name in table order. A name that
// cannot be resolved gets InvalidName and a diagnostic; it never stops
// resolution of the remaining sections.
func resolveNames(sections []SectionHeader, strtab StringTable) []ResolvedSection {
	names := make([]ResolvedSection, len(sections))
	for i := range sections {
		off := sections[i].Name
		names[i].Index = i

		if name, ok := strtab.Lookup(off); ok {
			names[i].Name = name
			names[i].Valid = true
			continue
		}

		names[i].Name = InvalidName
		if uint64(off) >= uint64(len(strtab)) {
			names[i].Diagnostic = fmt.Sprintf("section %d: name offset %d is outside the %d byte string table", i, off, len(strtab))
		} else {
			names[i].Diagnostic = fmt.Sprintf("section %d: name offset %d resolves to an empty name", i, off)
		}
		Logger().Warn("invalid section name",
			zap.Int("section", i),
			zap.Uint32("name_offset", off),
			zap.Int("strtab_size", len(strtab)))
	}
	return names
}
