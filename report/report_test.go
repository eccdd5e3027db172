package report

import (
	"bytes"
	"debug/elf"
	"strings"
	"testing"

	"github.com/wippyai/objlink/errors"
	"github.com/wippyai/objlink/object"
)

func sampleReport() *object.Report {
	rep := &object.Report{
		Path: "main.o",
		Ident: object.Ident{
			Class: elf.ELFCLASS64,
			Data:  elf.ELFDATA2LSB,
		},
		Sections: make([]object.SectionHeader, 3),
		Names: []object.ResolvedSection{
			{Index: 0, Name: ".text", Valid: true},
			{Index: 1, Name: ".data", Valid: true},
			{Index: 2, Name: object.InvalidName, Diagnostic: "section 2: name offset 0 resolves to an empty name"},
		},
	}
	rep.Header.Type = uint16(elf.ET_REL)
	rep.Header.Machine = uint16(elf.EM_X86_64)
	rep.Header.Shnum = 3
	return rep
}

func TestPrinterReportPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf, false).Report(sampleReport()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	want := "ELFCLASS64 ELFDATA2LSB ET_REL EM_X86_64, 3 sections\n" +
		"\n" +
		"--- Sections ---\n" +
		"[0] .text\n" +
		"[1] .data\n" +
		"[2] <invalid>\n" +
		"warning: section 2: name offset 0 resolves to an empty name\n"
	if buf.String() != want {
		t.Errorf("Report output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrinterReportDeterministic(t *testing.T) {
	rep := sampleReport()
	var a, b bytes.Buffer
	if err := NewPrinter(&a, false).Report(rep); err != nil {
		t.Fatal(err)
	}
	if err := NewPrinter(&b, false).Report(rep); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("rendering the same report twice gave different bytes")
	}
}

func TestPrinterReportStyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf, true).Report(sampleReport()); err != nil {
		t.Fatalf("Report: %v", err)
	}
	for _, s := range []string{".text", ".data", "<invalid>", "section 2:"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("styled output does not contain %q", s)
		}
	}
}

func TestPrinterFailure(t *testing.T) {
	var buf bytes.Buffer
	err := errors.UnreasonableSectionCount(50000, 10000)
	if werr := NewPrinter(&buf, false).Failure(err); werr != nil {
		t.Fatalf("Failure: %v", werr)
	}

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("failure output should be one line, got %q", out)
	}
	if !strings.HasPrefix(out, "error: ") || !strings.Contains(out, "unreasonable_section_count") {
		t.Errorf("failure output %q should name the failed stage", out)
	}
}
