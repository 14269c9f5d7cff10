package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/i18n"
	"github.com/stevesplace/order-service/internal/middleware"
	"github.com/stevesplace/order-service/internal/service"
)

// StaffHandler serves staff sign-in and the daily order list.
type StaffHandler struct {
	auth     service.StaffAuthService
	checkout service.CheckoutService
	loc      *time.Location
	now      func() time.Time
}

// NewStaffHandler creates a new StaffHandler. loc is the store time zone the
// day of the order list is reported in.
func NewStaffHandler(auth service.StaffAuthService, checkout service.CheckoutService, loc *time.Location) *StaffHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &StaffHandler{auth: auth, checkout: checkout, loc: loc, now: time.Now}
}

// IssueToken handles POST /api/v1/staff/token requests.
//
// @Summary      Staff sign-in
// @Description  Exchanges the store secret for a bearer token used on the staff endpoints.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        request body dto.StaffTokenRequest true "Store secret"
// @Success      200 {object} dto.SuccessResponse{data=dto.StaffTokenResponse} "Token issued"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Wrong store secret"
// @Failure      503 {object} dto.ErrorResponse "Staff sign-in not configured"
// @Router       /api/v1/staff/token [post]
func (h *StaffHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.StaffTokenRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	token, err := h.auth.IssueToken(c.Request.Context(), req.Secret, req.StaffName)
	switch {
	case errors.Is(err, service.ErrInvalidStaffSecret):
		audit(c, func(ls service.LoggingService) {
			middleware.AuditLogError(ls, c, model.ActionStaffDenied, "Staff sign-in refused", err, map[string]any{
				"staff_name": req.StaffName,
			})
		})
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidStaffSecret, nil)
		return
	case errors.Is(err, service.ErrStaffAuthNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStaffAuthDisabled, err)
		return
	case err != nil:
		builder.Failure(err)
		return
	}

	audit(c, func(ls service.LoggingService) {
		middleware.AuditLog(ls, c, model.ActionStaffToken, "Staff token issued", map[string]any{
			"staff_name": req.StaffName,
		})
	})
	builder.SuccessOK(token)
}

// OrdersToday handles GET /api/v1/staff/orders/today requests.
//
// @Summary      Today's orders
// @Description  Orders created since midnight in store time, oldest first.
// @Tags         Staff
// @Produce      json
// @Param        Authorization header string false "Bearer staff token"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderListResponse} "Orders"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/staff/orders/today [get]
func (h *StaffHandler) OrdersToday(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.checkout == nil {
		builder.Failure(service.ErrRepositoryNotConfigured)
		return
	}

	records, err := h.checkout.OrdersToday(c.Request.Context())
	if err != nil {
		builder.Failure(err)
		return
	}

	resp := dto.OrderListResponse{
		Date:   h.now().In(h.loc).Format(model.DateLayout),
		Count:  len(records),
		Orders: make([]dto.OrderResponse, len(records)),
	}
	for i, r := range records {
		resp.Orders[i] = dto.NewOrderResponse(r)
	}
	builder.SuccessOK(resp)
}
