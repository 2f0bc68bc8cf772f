package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrUnknownDiscipline = errors.New("unknown discipline")
)
