package httperr

import "errors"

// Kind classifies a domain error so handlers can translate it to a
// status code and the session layer can decide whether to clear.
type Kind int

const (
	KindValidation Kind = iota
	KindAuth
	KindForbidden
	KindConflict
	KindNotFound
)

type DomainError struct {
	Kind Kind
	Code string
}

func (e DomainError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return DomainError{Kind: KindValidation, Code: code}
}

func ErrAuth(code string) error {
	return DomainError{Kind: KindAuth, Code: code}
}

func ErrForbidden(code string) error {
	return DomainError{Kind: KindForbidden, Code: code}
}

func ErrConflict(code string) error {
	return DomainError{Kind: KindConflict, Code: code}
}

func ErrNotFound(code string) error {
	return DomainError{Kind: KindNotFound, Code: code}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
