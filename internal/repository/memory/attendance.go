package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	mu      sync.RWMutex
	records map[string]attendance.Record // keyed by employee id + date
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{records: make(map[string]attendance.Record)}
}

func attendanceKey(employeeID, date string) string {
	return employeeID + "|" + date
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	if !record.Status.IsValid() {
		return attendance.Record{}, attendance.ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := attendanceKey(record.EmployeeID, record.DateKey())
	if _, exists := r.records[key]; exists {
		return attendance.Record{}, attendance.ErrDuplicateRecord
	}
	r.records[key] = record
	return record, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := []attendance.Record{}
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if !from.IsZero() && rec.Date.Before(from) {
			continue
		}
		if !to.IsZero() && rec.Date.After(to) {
			continue
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

// ListByDate implements attendance.AttendanceRepository, ordered by employee id.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format("2006-01-02")
	records := []attendance.Record{}
	for _, rec := range r.records {
		if rec.DateKey() == day {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return lessID(records[i].EmployeeID, records[j].EmployeeID) })
	return records, nil
}
