package handler

import (
	"time"

	"github.com/salesdesk/leads-service/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createLeadRequest struct {
	Name   string `json:"name"   validate:"required,notblank,max=255"`
	Source string `json:"source" validate:"lead_source"`
	Owner  string `json:"owner"  validate:"omitempty,max=50"`
}

type updateStageRequest struct {
	Stage string `json:"stage" validate:"lead_stage"`
}

type updateOwnerRequest struct {
	Owner string `json:"owner" validate:"required,notblank,max=50"`
}

// --- Response types ---

type leadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Owner     string    `json:"owner"`
	Stage     string    `json:"stage"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listLeadsResponse struct {
	Leads      []leadResponse `json:"leads"`
	Count      int64          `json:"count"`
	TotalPages int            `json:"totalPages"`
}

type createLeadResponse struct {
	Lead leadResponse `json:"lead"`
}

type updateLeadResponse struct {
	Updated leadResponse `json:"updated"`
}

func toLeadResponse(l domain.Lead) leadResponse {
	return leadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Source:    string(l.Source),
		Owner:     l.Owner,
		Stage:     string(l.Stage),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLeadResponses(leads []domain.Lead) []leadResponse {
	out := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return out
}
