package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeValidation indicates a configuration validation error
	CodeValidation Code = "validation"

	// CodeStalemate indicates a combat hit its turn limit without a winner
	CodeStalemate Code = "stalemate"

	// CodeInvalidName indicates an entity name that does not match the naming rules
	CodeInvalidName Code = "invalid_name"

	// CodeInvalidHP indicates a max HP that is not a positive prime
	CodeInvalidHP Code = "invalid_hp"

	// CodeInvalidDamageTypes indicates a rejected damage type set
	CodeInvalidDamageTypes Code = "invalid_damage_types"

	// CodeInvalidSkinType indicates a skin type the entity kind does not allow
	CodeInvalidSkinType Code = "invalid_skin_type"

	// CodeInvalidValue indicates an item value or strength out of bounds
	CodeInvalidValue Code = "invalid_value"

	// CodeInvalidHolder indicates an item was placed on a terminated entity
	CodeInvalidHolder Code = "invalid_holder"

	// CodeInvalidItems indicates a starter item or backpack content batch that cannot be placed
	CodeInvalidItems Code = "invalid_items"

	// CodeInvalidProtection indicates a negative protection value
	CodeInvalidProtection Code = "invalid_protection"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Keep the code of an already coded error
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return &Error{
			Code:    arenaErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(arenaErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// InvalidNamef creates a formatted invalid name error
func InvalidNamef(format string, args ...any) *Error {
	return Newf(CodeInvalidName, format, args...)
}

// InvalidHPf creates a formatted invalid HP error
func InvalidHPf(format string, args ...any) *Error {
	return Newf(CodeInvalidHP, format, args...)
}

// InvalidDamageTypes creates an invalid damage types error
func InvalidDamageTypes(message string) *Error {
	return New(CodeInvalidDamageTypes, message)
}

// InvalidSkinTypef creates a formatted invalid skin type error
func InvalidSkinTypef(format string, args ...any) *Error {
	return Newf(CodeInvalidSkinType, format, args...)
}

// InvalidValuef creates a formatted invalid value error
func InvalidValuef(format string, args ...any) *Error {
	return Newf(CodeInvalidValue, format, args...)
}

// InvalidHolder creates an invalid holder error
func InvalidHolder(message string) *Error {
	return New(CodeInvalidHolder, message)
}

// InvalidItems creates an invalid items error
func InvalidItems(message string) *Error {
	return New(CodeInvalidItems, message)
}

// InvalidItemsf creates a formatted invalid items error
func InvalidItemsf(format string, args ...any) *Error {
	return Newf(CodeInvalidItems, format, args...)
}

// InvalidProtectionf creates a formatted invalid protection error
func InvalidProtectionf(format string, args ...any) *Error {
	return Newf(CodeInvalidProtection, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return arenaErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsStalemate checks if the error is a stalemate error
func IsStalemate(err error) bool {
	return Is(err, CodeStalemate)
}

// IsInvalidName checks if the error is an invalid name error
func IsInvalidName(err error) bool {
	return Is(err, CodeInvalidName)
}

// IsInvalidHP checks if the error is an invalid HP error
func IsInvalidHP(err error) bool {
	return Is(err, CodeInvalidHP)
}

// IsInvalidItems checks if the error is an invalid items error
func IsInvalidItems(err error) bool {
	return Is(err, CodeInvalidItems)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return arenaErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return arenaErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
