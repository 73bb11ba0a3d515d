package domain

import "errors"

// Kind - класс ошибки, видимый вызывающей стороне.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindForbidden  Kind = "FORBIDDEN"
	KindConflict   Kind = "CONFLICT"
	KindInternal   Kind = "INTERNAL"
)

// Error - ошибка предметной области: класс, сообщение для пользователя и исходная причина.
type Error struct {
	Kind    Kind
	Message string
	Origin  error
}

func (e *Error) Error() string {
	if e.Origin != nil {
		return e.Message + ": " + e.Origin.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Origin }

func NewError(kind Kind, message string, origin error) *Error {
	return &Error{Kind: kind, Message: message, Origin: origin}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf возвращает класс ошибки. Все, что не *Error, считается внутренней ошибкой.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind проверяет класс ошибки.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// PublicMessage возвращает текст, который можно показать пользователю.
// Причина внутренних ошибок не раскрывается.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "unexpected error"
}
