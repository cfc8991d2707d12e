package spending

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("spending plan not found")
	ErrTitleRequired   = errors.New("plan title is required")
	ErrDueDateRequired = errors.New("plan due date is required")
)

// Plan is a single planned expense with a due date.
type Plan struct {
	ID          uuid.UUID
	Title       string
	Amount      int64
	DueDate     time.Time
	Description string
	Paid        bool
	CreatedAt   time.Time
}

// DaysRemaining is the whole number of calendar days between now and the due
/// date: 0 on the due date itself, negative once overdue.
func (p *Plan) DaysRemaining(now time.Time) int {
	due := time.Date(p.DueDate.Year(), p.DueDate.Month(), p.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return int(due.Sub(today) / (24 * time.Hour))
}
