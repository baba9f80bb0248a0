package ports

import (
	"context"
	"time"

	"github.com/salesdesk/leads-service/internal/core/domain"
)

// ListLeadsInput carries the list endpoint parameters. Zero Page/Limit select defaults.
type ListLeadsInput struct {
	Query  string
	Source string
	Owner  string
	Page   int
	Limit  int
}

// ListLeadsResult is one page of leads plus the totals for the whole filter.
type ListLeadsResult struct {
	Leads      []domain.Lead
	Count      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreateLeadInput carries the data needed to create a lead.
type CreateLeadInput struct {
	Name           string
	Source         domain.Source
	Owner          string
	IdempotencyKey string
}

// CreateLeadResult is returned after creating a lead.
type CreateLeadResult struct {
	Lead domain.Lead
	// AlreadyExisted is true when the Idempotency-Key matched an earlier create.
	AlreadyExisted bool
}

// IdempotencyStore remembers which lead an Idempotency-Key produced.
type IdempotencyStore interface {
	// Lookup returns the lead id stored under key, or "" when the key is unknown.
	Lookup(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, leadID string, ttl time.Duration) error
}

// LeadService defines the use cases behind the leads endpoints.
type LeadService interface {
	ListLeads(ctx context.Context, input ListLeadsInput) (*ListLeadsResult, error)
	CreateLead(ctx context.Context, input CreateLeadInput) (*CreateLeadResult, error)
	UpdateStage(ctx context.Context, id string, stage domain.Stage) (*domain.Lead, error)
	UpdateOwner(ctx context.Context, id, owner string) (*domain.Lead, error)
}
