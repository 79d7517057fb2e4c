package domain

import "errors"

var (
	ErrNotFound              = errors.New("record not found")
	ErrDuplicateBinding      = errors.New("terminal already bound to reward template")
	ErrDuplicateActiveConfig = errors.New("active settlement price already exists")
	ErrStaleVersion          = errors.New("record was modified concurrently")
	ErrAlreadyResolved       = errors.New("overflow log already resolved")
	ErrValidation            = errors.New("validation failed")
)
