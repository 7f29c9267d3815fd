package entities

import "errors"

// Domain errors are deterministic and raised synchronously by the entity model
// and the renderer. Details are attached with fmt.Errorf("%w: ...").
var (
	ErrValidation        = errors.New("validation error")
	ErrUnknownTemplate   = errors.New("unknown template")
	ErrPrecondition      = errors.New("precondition failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotEditable       = errors.New("proposal is not editable")
	ErrExport            = errors.New("export error")
)
