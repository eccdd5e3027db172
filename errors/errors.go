package errors

import (
	"fmt"
	"strings"
)

// Class separates failures of the file system from failures of the content
type Class string

const (
	ClassIO     Class = "io"     // open failures and short reads
	ClassFormat Class = "format" // structurally invalid content
)

// Kind names the gate that rejected the input
type Kind string

const (
	KindCannotOpen               Kind = "cannot_open"
	KindTruncatedHeader          Kind = "truncated_header"
	KindTruncatedSectionTable    Kind = "truncated_section_table"
	KindTruncatedStringTable     Kind = "truncated_string_table"
	KindBadMagic                 Kind = "bad_magic"
	KindInvalidSectionInfo       Kind = "invalid_section_info"
	KindUnreasonableSectionCount Kind = "unreasonable_section_count"
	KindEmptyStringTable         Kind = "empty_string_table"
)

// Sentinels for errors.Is. Only Class and Kind take part in matching.
var (
	ErrCannotOpen               = &Error{Class: ClassIO, Kind: KindCannotOpen}
	ErrTruncatedHeader          = &Error{Class: ClassIO, Kind: KindTruncatedHeader}
	ErrTruncatedSectionTable    = &Error{Class: ClassIO, Kind: KindTruncatedSectionTable}
	ErrTruncatedStringTable     = &Error{Class: ClassIO, Kind: KindTruncatedStringTable}
	ErrBadMagic                 = &Error{Class: ClassFormat, Kind: KindBadMagic}
	ErrInvalidSectionInfo       = &Error{Class: ClassFormat, Kind: KindInvalidSectionInfo}
	ErrUnreasonableSectionCount = &Error{Class: ClassFormat, Kind: KindUnreasonableSectionCount}
	ErrEmptyStringTable         = &Error{Class: ClassFormat, Kind: KindEmptyStringTable}
)

// Error is the structured error type returned by the decoder
type Error struct {
	Value  any
	Cause  error
	Class  Class
	Kind   Kind
	Stage  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Class))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Stage != "" {
		b.WriteString(" at ")
		b.WriteString(e.Stage)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Class == t.Class && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(class Class, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Class: class,
			Kind:  kind,
		},
	}
}

// Stage sets the pipeline stage name
func (b *Builder) Stage(stage string) *Builder {
	b.err.Stage = stage
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the decoder gates

// CannotOpen creates an open failure error
func CannotOpen(path string, cause error) *Error {
	return &Error{
		Class:  ClassIO,
		Kind:   KindCannotOpen,
		Stage:  "open",
		Detail: fmt.Sprintf("cannot open %q", path),
		Value:  path,
		Cause:  cause,
	}
}

// Truncated creates a short-read error for one of the three read points
func Truncated(kind Kind, stage string, want, got int64, cause error) *Error {
	return &Error{
		Class:  ClassIO,
		Kind:   kind,
		Stage:  stage,
		Detail: fmt.Sprintf("want %d bytes, got %d", want, got),
		Value:  got,
		Cause:  cause,
	}
}

// BadMagic creates a bad identification error
func BadMagic(got []byte) *Error {
	return &Error{
		Class:  ClassFormat,
		Kind:   KindBadMagic,
		Stage:  "magic",
		Detail: fmt.Sprintf("identification starts with %q, want %q", got, "\x7fELF"),
		Value:  append([]byte(nil), got...),
	}
}

// InvalidSectionInfo creates a section bookkeeping error
func InvalidSectionInfo(detail string) *Error {
	return &Error{
		Class:  ClassFormat,
		Kind:   KindInvalidSectionInfo,
		Stage:  "header",
		Detail: detail,
	}
}

// UnreasonableSectionCount creates a section count ceiling error
func UnreasonableSectionCount(count, limit int) *Error {
	return &Error{
		Class:  ClassFormat,
		Kind:   KindUnreasonableSectionCount,
		Stage:  "section count",
		Detail: fmt.Sprintf("%d sections exceeds limit of %d", count, limit),
		Value:  count,
	}
}

// EmptyStringTable creates an empty section-name string table error
func EmptyStringTable(index int) *Error {
	return &Error{
		Class:  ClassFormat,
		Kind:   KindEmptyStringTable,
		Stage:  "string table",
		Detail: fmt.Sprintf("section %d declares size 0", index),
		Value:  index,
	}
}
