// Package errors provides structured error types for the objlink decoder.
//
// Errors are categorized by Class (I/O or format) and Kind (which gate of
// the decode pipeline rejected the input). The Error type also records the
// stage name, a human-readable detail, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.ClassFormat, errors.KindInvalidSectionInfo).
//		Stage("header").
//		Detail("string table index %d >= section count %d", 7, 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadMagic(ident[:4])
//	err := errors.Truncated(errors.KindTruncatedHeader, "header", 64, 32, cause)
//
// Every decoder failure matches one of the exported sentinels with
// errors.Is:
//
//	if errors.Is(err, errors.ErrBadMagic) { ... }
package errors
