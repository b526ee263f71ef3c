package errors

import (
	stderrors "errors"
	"net/http"
	"strconv"
)

const (
	// ProblemTypeBlank is the default RFC 7807 problem type.
	ProblemTypeBlank = "about:blank"

	titleNotFound        = "resource not found"
	titleDuplicated      = "duplicated record"
	titleInvalidArgument = "invalid argument"
	titleInternal        = "internal server error"

	invalidBodyDetail     = "you have applied a request with an invalid body. Please review the body and check the structure"
	invalidClientIDDetail = "clientId parameter must contain only integer values"
	internalDetail        = "the server encountered an unexpected condition that prevented it from fulfilling the request"
)

// Problem is the RFC 7807-style wire representation of an API error.
type Problem struct {
	Type      string            `json:"type"`
	Status    int               `json:"status"`
	Code      string            `json:"code"`
	Title     string            `json:"title"`
	Detail    string            `json:"detail"`
	Arguments map[string]string `json:"arguments,omitempty"`
}

// AsProblem maps an error to its wire problem. Errors outside the taxonomy
// map to an opaque internal server problem.
func AsProblem(err error) Problem {
	var duplicate *DuplicateError
	if stderrors.As(err, &duplicate) {
		return Problem{
			Type:   ProblemTypeBlank,
			Status: http.StatusConflict,
			Code:   duplicate.Subject.wireCode("DUPLICATED"),
			Title:  titleDuplicated,
			Detail: duplicate.Error(),
		}
	}

	var notFound *NotFoundError
	if stderrors.As(err, &notFound) {
		problem := Problem{
			Type:   ProblemTypeBlank,
			Status: http.StatusNotFound,
			Code:   notFound.Subject.wireCode("NOT_FOUND"),
			Title:  titleNotFound,
			Detail: notFound.Error(),
		}
		if notFound.Key != "" {
			problem.Arguments = map[string]string{notFound.Key: notFound.Value}
		}
		return problem
	}

	var invalidBody *InvalidBodyError
	if stderrors.As(err, &invalidBody) {
		return Problem{
			Type:   ProblemTypeBlank,
			Status: http.StatusBadRequest,
			Code:   "INVALID_BODY",
			Title:  titleInvalidArgument,
			Detail: invalidBodyDetail,
		}
	}

	var invalidClientID *InvalidClientIDError
	if stderrors.As(err, &invalidClientID) {
		return Problem{
			Type:   ProblemTypeBlank,
			Status: http.StatusBadRequest,
			Code:   "INVALID_CLIENT_ID",
			Title:  titleInvalidArgument,
			Detail: invalidClientIDDetail,
		}
	}

	return Problem{
		Type:   ProblemTypeBlank,
		Status: http.StatusInternalServerError,
		Code:   "INTERNAL_ERROR",
		Title:  titleInternal,
		Detail: internalDetail,
	}
}

// NotFoundClient builds the client-setting not-found error for a raw client
// identifier. Client problems carry no arguments on the wire.
func NotFoundClient(clientID int64) *NotFoundError {
	return NewNotFound(SubjectClient, "", strconv.FormatInt(clientID, 10))
}
