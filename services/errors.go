package services

import (
	"net/http"

	"masterdataapi/schema"
)

// ErrorKind classifies dispatcher failures. Every kind except KindStore is a
// recoverable, reported outcome with no surviving partial mutation.
type ErrorKind int

// Dispatcher failure kinds.
const (
	KindShape       ErrorKind = iota // missing or malformed request field
	KindWhitelist                    // table name not in the whitelist
	KindValidation                   // payload failed schema validation
	KindNotFound                     // locator matched zero active rows
	KindAmbiguous                    // locator matched more than one active row
	KindUnsupported                  // operation not supported for this table or column
	KindStore                        // unexpected persistence failure
)

// DispatchError is the typed failure outcome of a wrapper operation.
type DispatchError struct {
	Kind    ErrorKind
	Message string
	Fields  schema.FieldErrors // per-field reasons, validation failures only
}

func (e *DispatchError) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to the response status of the envelope.
func (e *DispatchError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindStore:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func shapeError(message string) *DispatchError {
	return &DispatchError{Kind: KindShape, Message: message}
}

func whitelistError() *DispatchError {
	return &DispatchError{Kind: KindWhitelist, Message: "Invalid table name."}
}

func validationError(message string, fields schema.FieldErrors) *DispatchError {
	return &DispatchError{Kind: KindValidation, Message: message, Fields: fields}
}

func notFoundError(message string) *DispatchError {
	return &DispatchError{Kind: KindNotFound, Message: message}
}

func ambiguousError(message string) *DispatchError {
	return &DispatchError{Kind: KindAmbiguous, Message: message}
}

func unsupportedError(message string) *DispatchError {
	return &DispatchError{Kind: KindUnsupported, Message: message}
}

func storeError(err error) *DispatchError {
	return &DispatchError{Kind: KindStore, Message: err.Error()}
}
