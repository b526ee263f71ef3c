// Package errors provides the structured error taxonomy surfaced by the API.
package errors

import (
	"fmt"
	"strings"
)

// Subject identifies the resource kind an error is scoped to. The code word
// feeds the wire error code, the noun feeds human-readable detail text; they
// differ for client settings ("client" vs "client setting").
type Subject struct {
	code string
	noun string
}

var (
	// SubjectReference scopes errors to reference documents.
	SubjectReference = Subject{code: "reference", noun: "reference"}
	// SubjectLabelGroup scopes errors to label groups and group overrides.
	SubjectLabelGroup = Subject{code: "label group", noun: "label group"}
	// SubjectClient scopes errors to client settings.
	SubjectClient = Subject{code: "client", noun: "client setting"}
	// SubjectSchema scopes errors to schema registry documents.
	SubjectSchema = Subject{code: "schema", noun: "schema"}
)

// CodeWord returns the raw subject word used to build wire codes.
func (s Subject) CodeWord() string {
	return s.code
}

// Noun returns the human-readable subject name used in detail text.
func (s Subject) Noun() string {
	return s.noun
}

func (s Subject) wireCode(kind string) string {
	word := strings.ToUpper(strings.ReplaceAll(s.code, " ", "_"))
	return word + "_" + kind
}

// DuplicateError reports a create against an already-present key.
type DuplicateError struct {
	Subject Subject
}

// NewDuplicate creates a duplicate error scoped to subject.
func NewDuplicate(subject Subject) *DuplicateError {
	return &DuplicateError{Subject: subject}
}

// Error returns the duplicate message.
func (e *DuplicateError) Error() string {
	if e == nil {
		return "duplicated record"
	}
	return e.Subject.Noun() + " already exists"
}

// NotFoundError reports a lookup against an absent key. Key names the wire
// argument carrying the lookup value; when empty no argument is emitted.
type NotFoundError struct {
	Subject Subject
	Key     string
	Value   string
}

// NewNotFound creates a not-found error scoped to subject for the given
// lookup key and value.
func NewNotFound(subject Subject, key, value string) *NotFoundError {
	return &NotFoundError{Subject: subject, Key: key, Value: value}
}

// Error returns the not-found message.
func (e *NotFoundError) Error() string {
	if e == nil {
		return "not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Subject.Noun(), e.Value)
}

// InvalidBodyError reports an empty or malformed request payload.
type InvalidBodyError struct{}

// NewInvalidBody creates an invalid-body error.
func NewInvalidBody() *InvalidBodyError {
	return &InvalidBodyError{}
}

// Error returns the invalid-body message.
func (e *InvalidBodyError) Error() string {
	return invalidBodyDetail
}

// InvalidClientIDError reports a non-integer client identifier parameter.
type InvalidClientIDError struct{}

// NewInvalidClientID creates an invalid-client-id error.
func NewInvalidClientID() *InvalidClientIDError {
	return &InvalidClientIDError{}
}

// Error returns the invalid-client-id message.
func (e *InvalidClientIDError) Error() string {
	return invalidClientIDDetail
}
