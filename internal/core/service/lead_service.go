package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/salesdesk/leads-service/internal/core/domain"
	"github.com/salesdesk/leads-service/internal/core/ports"
)

const (
	defaultPage           = 1
	defaultLimit          = 20
	maxLimit              = 100
	maxOffset             = math.MaxInt32
	defaultIdempotencyTTL = 24 * time.Hour
)

type LeadService struct {
	repo    ports.LeadRepository
	idem    ports.IdempotencyStore
	idemTTL time.Duration
	logger  zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, idemTTL: defaultIdempotencyTTL, logger: logger}
}

// WithIdempotency enables Idempotency-Key replay on CreateLead. Keys expire after ttl.
func (s *LeadService) WithIdempotency(store ports.IdempotencyStore, ttl time.Duration) *LeadService {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	s.idem = store
	s.idemTTL = ttl
	return s
}

// ListLeads returns one page of leads and the total count for the filter.
// The page query and the count query run concurrently; either failing fails the call.
func (s *LeadService) ListLeads(ctx context.Context, input ports.ListLeadsInput) (*ports.ListLeadsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)
	filter := ports.LeadFilter{
		Query:  input.Query,
		Source: input.Source,
		Owner:  input.Owner,
	}
	offset := (page - 1) * limit

	var (
		leads []domain.Lead
		count int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(guarded("search leads", func() error {
		var err error
		leads, err = s.repo.Search(gctx, filter, offset, limit)
		if err != nil {
			return fmt.Errorf("search leads: %w", err)
		}
		return nil
	}))
	g.Go(guarded("count leads", func() error {
		var err error
		count, err = s.repo.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count leads: %w", err)
		}
		return nil
	}))
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).
			Str("query", filter.Query).
			Str("source", filter.Source).
			Str("owner", filter.Owner).
			Int("page", page).
			Int("limit", limit).
			Msg("failed to list leads")
		return nil, err
	}

	if leads == nil {
		leads = []domain.Lead{}
	}

	return &ports.ListLeadsResult{
		Leads:      leads,
		Count:      count,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(count, limit),
	}, nil
}

// CreateLead stores a new lead in the initial stage. A blank owner becomes
// domain.DefaultOwner. If an idempotency key is given and was already used,
// the lead created by the first call is returned instead.
func (s *LeadService) CreateLead(ctx context.Context, input ports.CreateLeadInput) (*ports.CreateLeadResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("create lead: %w: name", domain.ErrMissingFields)
	}
	if !input.Source.Valid() {
		return nil, fmt.Errorf("create lead: %w %q", domain.ErrInvalidSource, input.Source)
	}

	if existing := s.replay(ctx, input.IdempotencyKey); existing != nil {
		return &ports.CreateLeadResult{Lead: *existing, AlreadyExisted: true}, nil
	}

	owner := input.Owner
	if strings.TrimSpace(owner) == "" {
		owner = domain.DefaultOwner
	}

	lead := &domain.Lead{
		Name:   input.Name,
		Source: input.Source,
		Owner:  owner,
		Stage:  domain.StageNewLead,
	}
	if err := s.repo.Insert(ctx, lead); err != nil {
		s.logger.Error().Err(err).Str("source", string(input.Source)).Msg("failed to create lead")
		return nil, fmt.Errorf("create lead: %w", err)
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, lead.ID, s.idemTTL); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().Str("lead_id", lead.ID).Str("source", string(lead.Source)).Str("owner", lead.Owner).Msg("lead created")

	return &ports.CreateLeadResult{Lead: *lead}, nil
}

// replay returns the lead previously created under key, or nil. Lookup
// failures are logged and treated as a miss.
func (s *LeadService) replay(ctx context.Context, key string) *domain.Lead {
	if key == "" || s.idem == nil {
		return nil
	}

	leadID, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil
	}
	if leadID == "" {
		return nil
	}

	lead, err := s.repo.FindByID(ctx, leadID)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Str("lead_id", leadID).Msg("idempotent lead not loadable, creating anyway")
		return nil
	}

	s.logger.Info().Str("idempotency_key", key).Str("lead_id", lead.ID).Msg("idempotent replay")
	return lead
}

// UpdateStage moves a lead to another pipeline stage.
func (s *LeadService) UpdateStage(ctx context.Context, id string, stage domain.Stage) (*domain.Lead, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("update stage: %w %q", domain.ErrInvalidStage, stage)
	}
	return s.update(ctx, "stage", id, ports.LeadPatch{Stage: &stage})
}

// UpdateOwner reassigns a lead. The owner is stored as given.
func (s *LeadService) UpdateOwner(ctx context.Context, id, owner string) (*domain.Lead, error) {
	if !domain.ValidOwner(owner) {
		return nil, fmt.Errorf("update owner: %w", domain.ErrInvalidOwner)
	}
	return s.update(ctx, "owner", id, ports.LeadPatch{Owner: &owner})
}

func (s *LeadService) update(ctx context.Context, field, id string, patch ports.LeadPatch) (*domain.Lead, error) {
	lead, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			s.logger.Debug().Str("lead_id", id).Str("field", field).Msg("lead to update not found")
			return nil, err
		}
		s.logger.Error().Err(err).Str("lead_id", id).Str("field", field).Msg("failed to update lead")
		return nil, fmt.Errorf("update %s: %w", field, err)
	}

	s.logger.Info().Str("lead_id", id).Str("field", field).Msg("lead updated")
	return lead, nil
}

// guarded turns a panic in fn into an error. Recover middleware only sees
// the request goroutine, so errgroup workers need their own.
func guarded(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s: panic: %v", name, r)
			}
		}()
		return fn()
	}
}

// normalizePage clamps page to >= 1 and limit to [1, maxLimit], using defaults for non-positive values.
// Page is also capped so that (page-1)*limit never exceeds maxOffset.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page-1 > maxOffset/limit {
		page = maxOffset/limit + 1
	}
	return page, limit
}

func totalPages(count int64, limit int) int {
	if count <= 0 || limit <= 0 {
		return 0
	}
	return int((count + int64(limit) - 1) / int64(limit))
}
