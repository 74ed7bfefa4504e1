package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
)

// AttendanceRepository is an in-memory attendance store. It backs tests and
// the memory storage engine.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func (r *AttendanceRepository) Create(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = record
	return record, nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (r *AttendanceRepository) GetOpenByEmployeeAndDate(_ context.Context, employeeID, date string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Date == date && record.Open() {
			return record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) Update(_ context.Context, record attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *AttendanceRepository) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []attendance.Attendance
	for _, record := range r.records {
		if !matchesFilter(record, filter) {
			continue
		}
		matched = append(matched, record)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].ClockInTime > matched[j].ClockInTime
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.PageSize), total, nil
}

func (r *AttendanceRepository) ListOpenBefore(_ context.Context, date string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var open []attendance.Attendance
	for _, record := range r.records {
		if record.Open() && record.Date < date {
			open = append(open, record)
		}
	}

	sort.Slice(open, func(i, j int) bool { return open[i].Date < open[j].Date })
	return open, nil
}

func matchesFilter(record attendance.Attendance, filter attendance.Filter) bool {
	if filter.EmployeeID != "" && record.EmployeeID != filter.EmployeeID {
		return false
	}
	if filter.Date != "" && record.Date != filter.Date {
		return false
	}
	if filter.DateFrom != "" && record.Date < filter.DateFrom {
		return false
	}
	if filter.DateTo != "" && record.Date > filter.DateTo {
		return false
	}
	if filter.Status != "" && record.Status != filter.Status {
		return false
	}
	return true
}

func paginate(records []attendance.Attendance, page, pageSize int) []attendance.Attendance {
	if pageSize <= 0 {
		return records
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
