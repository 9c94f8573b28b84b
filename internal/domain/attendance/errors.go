package attendance

import "errors"

var (
	ErrDuplicateRecord = errors.New("attendance already recorded for this employee and date")
	ErrInvalidStatus   = errors.New("invalid attendance status")
)
