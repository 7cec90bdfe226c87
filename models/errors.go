package models

import (
    "errors"
    "fmt"
)

// Listing model errors. Handlers match these with errors.Is to pick a
// status code; everything else that bubbles out of a handler is a
// collaborator failure.
var (
    ErrInvalidCategory      = errors.New("invalid category")
    ErrMissingRequiredField = errors.New("missing required field")
    ErrStaffNotSupported    = errors.New("staff not supported for category")
    ErrIndexOutOfRange      = errors.New("member index out of range")
    ErrMemberNotFound       = errors.New("member not found")
    ErrUnknownField         = errors.New("unknown member field")
)

func invalidCategory(c Category) error {
    return fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
}

func missingField(name string) error {
    return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}
