package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
)

type payrollRepositoryImpl struct {
	mu      sync.RWMutex
	records map[string]payroll.Record
}

func NewPayrollRepository() payroll.PayrollRepository {
	return &payrollRepositoryImpl{records: make(map[string]payroll.Record)}
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return payroll.Record{}, payroll.ErrPayrollRecordExists
	}
	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID {
			return payroll.Record{}, payroll.ErrPayrollRecordExists
		}
	}
	r.records[record.ID] = record
	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

// GetByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (payroll.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrPayrollRecordNotFound
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payroll.Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].EmployeeID, out[j].EmployeeID) })
	return out, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	r.records[record.ID] = record
	return nil
}
