package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salesdesk/leads-service/internal/api/metrics"
	"github.com/salesdesk/leads-service/internal/core/domain"
	"github.com/salesdesk/leads-service/internal/core/ports"
	"github.com/salesdesk/leads-service/internal/pkg/validate"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"

	msgInvalidPayload     = "invalid payload"
	msgInvalidPagination  = "page and limit must be integers"
	msgInvalidOwner       = "Invalid owner. A valid string is required."
	msgLeadNotFound       = "Lead not found"
	msgFetchLeadsFailed   = "Failed to fetch the leads"
	msgAddLeadFailed      = "Failed to add lead"
	msgUpdateStageFailed  = "Failed to update lead stage"
	msgUpdateOwnerFailed  = "Failed to update lead owner"
	msgMissingFieldsStart = "Missing required fields: "
)

// LeadHandler handles HTTP requests for lead operations.
type LeadHandler struct {
	service ports.LeadService
	log     zerolog.Logger
}

func NewLeadHandler(service ports.LeadService, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{service: service, log: log}
}

// List handles GET /leads.
//
// @Summary      List leads
// @Description  Filters are optional and AND-combined. Results are ordered by creation time.
// @Tags         leads
// @Produce      json
// @Param        query   query     string  false  "Case-insensitive substring of the lead name"
// @Param        source  query     string  false  "Exact source"
// @Param        owner   query     string  false  "Exact owner"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Success      200     {object}  listLeadsResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	var page, limit int
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPagination})
	}

	start := time.Now()
	result, err := h.service.ListLeads(c.Request().Context(), ports.ListLeadsInput{
		Query:  c.QueryParam("query"),
		Source: c.QueryParam("source"),
		Owner:  c.QueryParam("owner"),
		Page:   page,
		Limit:  limit,
	})
	metrics.ListDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues(metrics.OpList).Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgFetchLeadsFailed})
	}

	return c.JSON(http.StatusOK, listLeadsResponse{
		Leads:      toLeadResponses(result.Leads),
		Count:      result.Count,
		TotalPages: result.TotalPages,
	})
}

// Create handles POST /leads.
//
// @Summary      Create a lead
// @Description  The lead starts in stage "New Lead". A missing owner becomes "defaultOwner".
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createLeadRequest  true   "Lead details"
// @Success      201              {object}  createLeadResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}

	// Presence is checked on the raw object so that a field sent as "" is not
	// reported as missing.
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		h.log.Debug().Err(err).Msg("create lead: body is not a JSON object")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}
	if ok, missing := validate.RequiredFields(raw, "name", "source"); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingFieldsStart + strings.Join(missing, ", ")})
	}

	var req createLeadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}
	if !domain.Source(req.Source).Valid() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: invalidSourceMessage()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.CreateLead(c.Request().Context(), ports.CreateLeadInput{
		Name:           req.Name,
		Source:         domain.Source(req.Source),
		Owner:          req.Owner,
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSource) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: invalidSourceMessage()})
		}
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingFieldsStart + "name"})
		}
		metrics.StoreErrorsTotal.WithLabelValues(metrics.OpCreate).Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgAddLeadFailed})
	}

	if result.AlreadyExisted {
		metrics.IdempotentReplaysTotal.Inc()
		c.Response().Header().Set(headerReplayed, "true")
	} else {
		metrics.CreatedTotal.WithLabelValues(string(result.Lead.Source)).Inc()
	}

	return c.JSON(http.StatusCreated, createLeadResponse{Lead: toLeadResponse(result.Lead)})
}

// UpdateStage handles PATCH /leads/:leadId/stage.
//
// @Summary      Move a lead to another stage
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        leadId  path      string              true  "Lead id (UUID)"
// @Param        body    body      updateStageRequest  true  "New stage"
// @Success      200     {object}  updateLeadResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /leads/{leadId}/stage [patch]
func (h *LeadHandler) UpdateStage(c echo.Context) error {
	var req updateStageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: invalidStageMessage()})
	}

	lead, err := h.service.UpdateStage(c.Request().Context(), c.Param("leadId"), domain.Stage(req.Stage))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStage):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: invalidStageMessage()})
		case errors.Is(err, domain.ErrLeadNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgLeadNotFound})
		}
		metrics.StoreErrorsTotal.WithLabelValues(metrics.OpUpdateStage).Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgUpdateStageFailed})
	}

	metrics.UpdatedTotal.WithLabelValues("stage").Inc()
	return c.JSON(http.StatusOK, updateLeadResponse{Updated: toLeadResponse(*lead)})
}

// UpdateOwner handles PATCH /leads/:leadId/owner.
//
// @Summary      Reassign a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        leadId  path      string              true  "Lead id (UUID)"
// @Param        body    body      updateOwnerRequest  true  "New owner"
// @Success      200     {object}  updateLeadResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /leads/{leadId}/owner [patch]
func (h *LeadHandler) UpdateOwner(c echo.Context) error {
	// A non-string owner fails binding and gets the same answer as a blank one.
	var req updateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidOwner})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidOwner})
	}

	lead, err := h.service.UpdateOwner(c.Request().Context(), c.Param("leadId"), req.Owner)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOwner):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidOwner})
		case errors.Is(err, domain.ErrLeadNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgLeadNotFound})
		}
		metrics.StoreErrorsTotal.WithLabelValues(metrics.OpUpdateOwner).Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgUpdateOwnerFailed})
	}

	metrics.UpdatedTotal.WithLabelValues("owner").Inc()
	return c.JSON(http.StatusOK, updateLeadResponse{Updated: toLeadResponse(*lead)})
}
