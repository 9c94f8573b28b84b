package postgresql

import (
	"context"
	"errors"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `id, employee_id, employee_name, leave_type, start_date, end_date, remarks,
		status, admin_comment, decided_by, decided_at, submitted_at, version`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.EmployeeName,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Remarks,
		&lr.Status,
		&lr.AdminComment,
		&lr.DecidedBy,
		&lr.DecidedAt,
		&lr.SubmittedAt,
		&lr.Version,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository. The stored version starts at 1.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, employee_name, leave_type, start_date, end_date, remarks,
			status, admin_comment, decided_by, decided_at, submitted_at, version
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, 1
		)
		RETURNING ` + leaveColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.EmployeeName,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Remarks,
		request.Status,
		request.AdminComment,
		request.DecidedBy,
		request.DecidedAt,
		request.SubmittedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestExists
		}
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE employee_id = $1 ORDER BY seq DESC`, employeeID)
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `SELECT `+leaveColumns+` FROM leave_requests ORDER BY seq DESC`)
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE status = 'pending' ORDER BY submitted_at ASC, seq ASC`)
}

// UpdateDecision implements leave.LeaveRequestRepository. The version and
// status guard is part of the UPDATE so concurrent deciders cannot both win.
func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, request leave.LeaveRequest, expectedVersion int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3,
			admin_comment = $4,
			decided_by = $5,
			decided_at = $6,
			version = version + 1
		WHERE id = $1 AND version = $2 AND status = 'pending'
	`
	tag, err := q.Exec(ctx, query,
		request.ID, expectedVersion, request.Status, request.AdminComment, request.DecidedBy, request.DecidedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, request.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return leave.ErrLeaveRequestNotFound
	}
	return leave.ErrVersionConflict
}
