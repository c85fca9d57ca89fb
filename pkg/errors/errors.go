package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind tags an Error with its place in the service's error taxonomy.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindStorage
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error codes exposed in ErrorResp.Error.
const (
	CodeValidation     = "validation_error"
	CodeInternalServer = "internal_server_error"
)

// FieldErrors maps a field name to its ordered violation messages.
type FieldErrors map[string][]string

// Add appends msg to field. Empty messages are ignored so a field never
// carries an empty list.
func (f FieldErrors) Add(field, msg string) {
	if msg == "" {
		return
	}
	f[field] = append(f[field], msg)
}

// Empty reports whether no field has a message.
func (f FieldErrors) Empty() bool {
	for _, msgs := range f {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

// Compact returns a copy without fields whose message list is empty.
func (f FieldErrors) Compact() FieldErrors {
	out := make(FieldErrors, len(f))
	for field, msgs := range f {
		if len(msgs) == 0 {
			continue
		}
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

func (f FieldErrors) String() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(f[field], "; ")))
	}
	return strings.Join(parts, ", ")
}

// Error is the tagged error carried across layer boundaries.
type Error struct {
	Kind   Kind
	Op     string
	Fields FieldErrors
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		return "validation failed: " + e.Fields.String()
	case KindConfig:
		return fmt.Sprintf("config %s: %v", e.Op, e.Err)
	default:
		if e.Op == "" {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError builds a KindValidation error from field violations.
func NewValidationError(fields FieldErrors) *Error {
	return &Error{Kind: KindValidation, Fields: fields.Compact()}
}

// NewStorageError wraps a driver or I/O failure raised by op.
func NewStorageError(op string, err error) *Error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

// NewConfigError reports a missing or invalid configuration key.
func NewConfigError(key, msg string) *Error {
	return &Error{Kind: KindConfig, Op: key, Err: errors.New(msg)}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// FieldsOf returns the field violations carried by err, if any.
func FieldsOf(err error) FieldErrors {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// HTTPStatus maps a Kind to the status code returned to callers.
func HTTPStatus(k Kind) int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindStorage, KindConfig, KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Code maps a Kind to the error code returned to callers.
func Code(k Kind) string {
	switch k {
	case KindValidation:
		return CodeValidation
	case KindStorage, KindConfig, KindUnknown:
		return CodeInternalServer
	default:
		return CodeInternalServer
	}
}
