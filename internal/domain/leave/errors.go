package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestExists           = errors.New("leave request already exists")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrVersionConflict              = errors.New("leave request was modified concurrently")
	ErrApplyOnBehalfForbidden       = errors.New("leave can only be requested for yourself")
	ErrUnauthorizedAccess           = errors.New("unauthorized access to leave request")
)
