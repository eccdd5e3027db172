// Package objlink is the front end of a static linker for 64-bit ELF
// object files.
//
// It reads one compiler-generated object file, validates its header,
// decodes the section-header table and resolves section names from the
// section name string table. Later linker phases consume the result.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	objlink/
//	├── object/          Record layout and the gated object file decoder
//	├── linker/          Phases that consume decoded files (symbol placeholder)
//	├── report/          Human-readable rendering of reports and failures
//	├── errors/          Structured error types for every decoder gate
//	└── cmd/unnlinker/   Command line entry point
//
// # Quick Start
//
// Decode a file and print its sections:
//
//	rep, err := object.Decode("main.o")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.NewPrinter(os.Stdout, false).Report(rep)
//
// # Failures
//
// Structural problems end the decode call with an *errors.Error whose
// Kind names the failed gate. Match them with errors.Is:
//
//	if errors.Is(err, errors.ErrTruncatedSectionTable) {
//	    ...
//	}
//
// A section name that cannot be resolved does not fail the call; the
// section is reported as "<invalid>" with a diagnostic.
//
// # Thread Safety
//
// Decode calls share no state and may run concurrently. Loggers must be
// set with SetLogger before the first call.
package objlink
