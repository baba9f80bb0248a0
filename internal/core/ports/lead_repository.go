package ports

import (
	"context"

	"github.com/salesdesk/leads-service/internal/core/domain"
)

// LeadFilter carries the optional search conditions for listing leads.
// Empty fields are ignored; the remaining conditions are AND-combined.
type LeadFilter struct {
	Query  string // case-insensitive substring of name
	Source string // exact match
	Owner  string // exact match
}

// LeadPatch lists the fields to change on an update. Nil fields are left as-is.
type LeadPatch struct {
	Stage *domain.Stage
	Owner *string
}

// LeadRepository defines persistence operations for leads.
type LeadRepository interface {
	// Search returns one page of leads matching filter, ordered by creation time then id.
	Search(ctx context.Context, filter LeadFilter, offset, limit int) ([]domain.Lead, error)
	// Count returns the number of leads matching filter, ignoring pagination.
	Count(ctx context.Context, filter LeadFilter) (int64, error)
	// Insert assigns id and timestamps and persists the lead, filling it with stored values.
	Insert(ctx context.Context, lead *domain.Lead) error
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	// UpdateByID applies patch to the lead with the given id.
	// Returns domain.ErrLeadNotFound when no row matched.
	UpdateByID(ctx context.Context, id string, patch LeadPatch) (*domain.Lead, error)
}
