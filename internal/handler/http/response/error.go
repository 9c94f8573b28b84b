package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/notification"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrRoleMismatch):
		Unauthorized(w, "Account does not have the selected role")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, jwt.ErrInvalidClaims):
		Unauthorized(w, "Invalid or expired token")

	// Not found
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Conflicts
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrVersionConflict):
		Conflict(w, "Leave request was modified concurrently, please retry")
	case errors.Is(err, leave.ErrLeaveRequestExists):
		Conflict(w, "Leave request already exists")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, payroll.ErrPayrollRecordExists):
		Conflict(w, "Payroll record already exists for this employee")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance already recorded for this date")

	// Permissions
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrProfileOwnerRequired):
		Forbidden(w, "Only the profile owner can edit it")
	case errors.Is(err, leave.ErrApplyOnBehalfForbidden):
		Forbidden(w, "Leave can only be requested for yourself")
	case errors.Is(err, leave.ErrUnauthorizedAccess):
		Forbidden(w, "Unauthorized access to leave request")

	// Bad input
	case errors.Is(err, user.ErrInvalidPhotoType):
		BadRequest(w, "Invalid photo type: only jpg, jpeg, png allowed", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, notification.ErrStreamingUnsupported):
		InternalServerError(w, "Streaming not supported")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
