package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/i18n"
	"github.com/stevesplace/order-service/internal/metrics"
	"github.com/stevesplace/order-service/internal/middleware"
	"github.com/stevesplace/order-service/internal/service"
)

const (
	defaultClosuresCacheTTL = 30 * time.Second
	closuresFetchTimeout    = 2 * time.Second
)

// closuresCache holds the last upcoming-closures listing.
type closuresCache struct {
	closures  atomic.Value // holds []model.ClosedDate
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

func newClosuresCache(ttl time.Duration) *closuresCache {
	c := &closuresCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached listing, or nil when it is expired or empty.
func (c *closuresCache) get() []model.ClosedDate {
	if exp, ok := c.expiresAt.Load().(time.Time); ok && time.Now().Before(exp) {
		if closures, ok := c.closures.Load().([]model.ClosedDate); ok {
			metrics.RecordCacheOperation("store_closures", "get", "hit")
			return closures
		}
	}
	metrics.RecordCacheOperation("store_closures", "get", "miss")
	return nil
}

func (c *closuresCache) set(closures []model.ClosedDate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closures.Store(closures)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

func (c *closuresCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// StoreHandler serves the closure calendar.
type StoreHandler struct {
	calendar      service.ClosureCalendar
	closedWeekday time.Weekday
	cache         *closuresCache
}

// StoreHandlerOption configures a StoreHandler.
type StoreHandlerOption func(*StoreHandler)

// WithClosuresCacheTTL sets how long the public closure listing is cached.
func WithClosuresCacheTTL(ttl time.Duration) StoreHandlerOption {
	return func(h *StoreHandler) {
		h.cache = newClosuresCache(ttl)
	}
}

// NewStoreHandler creates a new StoreHandler instance.
func NewStoreHandler(calendar service.ClosureCalendar, closedWeekday time.Weekday, opts ...StoreHandlerOption) *StoreHandler {
	h := &StoreHandler{
		calendar:      calendar,
		closedWeekday: closedWeekday,
		cache:         newClosuresCache(defaultClosuresCacheTTL),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListClosures handles GET /api/v1/store/closures requests.
//
// @Summary      Upcoming store closures
// @Description  Closures from today onward in store time, plus the standing closed weekday.
// @Tags         Store
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.StoreClosuresResponse} "Closures"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Router       /api/v1/store/closures [get]
func (h *StoreHandler) ListClosures(c *gin.Context) {
	builder := NewResponseBuilder(c)

	closures, err := h.upcoming(c.Request.Context())
	if err != nil {
		builder.Failure(err)
		return
	}

	resp := dto.StoreClosuresResponse{
		ClosedWeekday: h.closedWeekday.String(),
		Closures:      make([]dto.ClosureResponse, len(closures)),
	}
	for i, cd := range closures {
		resp.Closures[i] = dto.NewClosureResponse(cd)
	}
	builder.SuccessOK(resp)
}

// AddClosure handles POST /api/v1/staff/closures requests.
//
// @Summary      Close the store on a date
// @Description  Adds a closure for a date in store time. A recurring closure repeats on the same weekday every week.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer staff token"
// @Param        request body dto.ClosureRequest true "Closure"
// @Success      201 {object} dto.SuccessResponse{data=dto.ClosureResponse} "Closure added"
// @Failure      400 {object} dto.ErrorResponse "Invalid or past date"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      409 {object} dto.ErrorResponse "Date already closed"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/staff/closures [post]
func (h *StoreHandler) AddClosure(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ClosureRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	closure, err := h.calendar.AddClosure(c.Request.Context(), service.ClosureRequest{
		Date:      req.Date,
		Recurring: req.Recurring,
		Reason:    req.Reason,
		CreatedBy: middleware.GetStaff(c),
	})
	switch {
	case errors.Is(err, service.ErrInvalidClosureDate):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidClosureDate, nil)
		return
	case errors.Is(err, service.ErrClosureInPast):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyClosureInPast, nil)
		return
	case errors.Is(err, service.ErrDuplicateClosure):
		builder.Error(http.StatusConflict, i18n.ErrKeyDuplicateClosure, nil)
		return
	case err != nil:
		builder.Failure(err)
		return
	}

	h.cache.invalidate()
	audit(c, func(ls service.LoggingService) {
		middleware.AuditLog(ls, c, model.ActionClosureAdded, "Store closure added", map[string]any{
			"date":      closure.Date,
			"recurring": closure.Recurring,
		})
	})

	builder.SuccessCreated(dto.NewClosureResponse(*closure))
}

// InvalidateClosuresCache drops the cached public listing.
func (h *StoreHandler) InvalidateClosuresCache() {
	h.cache.invalidate()
}

func (h *StoreHandler) upcoming(ctx context.Context) ([]model.ClosedDate, error) {
	if closures := h.cache.get(); closures != nil {
		return closures, nil
	}

	ctx, cancel := context.WithTimeout(ctx, closuresFetchTimeout)
	defer cancel()

	closures, err := h.calendar.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	h.cache.set(closures)
	return closures, nil
}
