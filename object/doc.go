// Package object decodes the section layout of a 64-bit ELF object file.
//
// This is the ingestion front end of the linker: it validates the master
// header, reads the section-header table and resolves section names from
// the section name string table.
//
// # Decoding
//
//	rep, err := object.Decode("main.o")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range rep.Names {
//	    fmt.Printf("[%d] %s\n", s.Index, s.Name)
//	}
//
// An in-memory image decodes the same way:
//
//	rep, err := object.DecodeBytes(data)
//
// # Validation
//
// Decoding is a fixed sequence of gates. The first gate that fails ends
// the call with an *errors.Error from github.com/wippyai/objlink/errors:
//
//	open                  cannot_open
//	read header           truncated_header
//	magic                 bad_magic
//	header sanity         invalid_section_info
//	section count bound   unreasonable_section_count
//	read section table    truncated_section_table
//	string table size     empty_string_table
//	read string table     truncated_string_table
//
// Section names are resolved per entry. A name offset outside the string
// table, or one that points at an empty name, yields InvalidName and a
// diagnostic on the ResolvedSection, and the remaining sections are still
// resolved.
//
// # Byte Order
//
// Multi-byte fields use the byte order declared in the identification
// block. Files that declare big endian (ELFDATA2MSB) are read as big
// endian; everything else is read as little endian.
package object
