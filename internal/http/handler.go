package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/domain/validation"
	"github.com/stevesplace/order-service/internal/i18n"
	"github.com/stevesplace/order-service/internal/middleware"
	"github.com/stevesplace/order-service/internal/service"
)

// loggingServiceKey is the context key the router stores the audit log writer under.
const loggingServiceKey = "logging_service"

// Handler provides HTTP handlers for order routes.
type Handler struct {
	validator service.OrderValidator
	checkout  service.CheckoutService
}

// NewHandler creates a new Handler instance. checkout may be nil, in which
// case orders can be validated but not placed.
func NewHandler(validator service.OrderValidator, checkout service.CheckoutService) *Handler {
	return &Handler{
		validator: validator,
		checkout:  checkout,
	}
}

// ValidateOrder handles POST /api/v1/orders/validate requests.
//
// @Summary      Validate an order
// @Description  Runs the full validation pipeline without storing anything: contact details, every item, the pickup time and the claimed price. The first failure is reported with its kind and rule.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.OrderRequest true "Order to validate"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderQuoteResponse} "Order is valid"
// @Failure      400 {object} dto.ErrorResponse "Structural failure"
// @Failure      409 {object} dto.ErrorResponse "Claimed price does not match"
// @Failure      422 {object} dto.ErrorResponse "Business rule or pickup time violated"
// @Failure      503 {object} dto.ErrorResponse "Closure calendar unavailable"
// @Router       /api/v1/orders/validate [post]
func (h *Handler) ValidateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindOrder(c, builder)
	if !ok {
		return
	}

	validated, err := h.validator.Validate(c.Request.Context(), toServiceOrder(req))
	if err != nil {
		builder.Failure(err)
		return
	}

	builder.SuccessOK(dto.OrderQuoteResponse{
		Items:         validated.Order.Lines(),
		Subtotal:      validated.Order.Total().StringFixed(2),
		Total:         validated.Total.StringFixed(2),
		PaymentMethod: req.PaymentMethod,
		PickupAt:      validated.PickupAt,
	})
}

// PlaceOrder handles POST /api/v1/orders requests.
//
// @Summary      Place an order
// @Description  Validates the order and stores it with a pending payment. Supports idempotency via the Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.OrderRequest true "Order to place"
// @Success      201 {object} dto.SuccessResponse{data=dto.OrderPlacedResponse} "Order placed"
// @Failure      400 {object} dto.ErrorResponse "Structural failure"
// @Failure      409 {object} dto.ErrorResponse "Claimed price does not match, or idempotency key reused"
// @Failure      422 {object} dto.ErrorResponse "Business rule or pickup time violated"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Router       /api/v1/orders [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindOrder(c, builder)
	if !ok {
		return
	}
	if h.checkout == nil {
		builder.Failure(service.ErrRepositoryNotConfigured)
		return
	}

	placed, err := h.checkout.PlaceOrder(c.Request.Context(), service.CheckoutRequest{
		OrderRequest:  toServiceOrder(req),
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		if validation.IsFailure(err) {
			audit(c, func(ls service.LoggingService) {
				middleware.AuditLogError(ls, c, model.ActionOrderRejected, "Order rejected", err, map[string]any{
					"kind":  string(validation.KindOf(err)),
					"items": len(req.Items),
				})
			})
		}
		builder.Failure(err)
		return
	}

	record := placed.Record
	audit(c, func(ls service.LoggingService) {
		middleware.AuditLog(ls, c, model.ActionOrderPlaced, "Order placed", map[string]any{
			"reference":      record.Reference,
			"total":          record.Total.StringFixed(2),
			"payment_method": string(record.PaymentMethod),
		})
	})

	builder.SuccessCreated(dto.OrderPlacedResponse{
		Reference:     record.Reference,
		Total:         record.Total.StringFixed(2),
		PaymentStatus: string(record.PaymentStatus),
		PickupAt:      record.PickupAt,
		Estimate:      placed.Estimate,
		Message:       placed.Message,
	})
}

// GetOrder handles GET /api/v1/orders/:reference requests.
//
// @Summary      Get a placed order
// @Description  Returns the order stored under a reference.
// @Tags         Orders
// @Produce      json
// @Param        reference path string true "Order reference"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderResponse} "Stored order"
// @Failure      404 {object} dto.ErrorResponse "Unknown reference"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Router       /api/v1/orders/{reference} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.checkout == nil {
		builder.Failure(service.ErrRepositoryNotConfigured)
		return
	}

	record, err := h.checkout.FindOrder(c.Request.Context(), c.Param("reference"))
	if errors.Is(err, service.ErrOrderNotFound) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, nil)
		return
	}
	if err != nil {
		builder.Failure(err)
		return
	}

	builder.SuccessOK(dto.NewOrderResponse(*record))
}

// bindOrder decodes and checks an order body, answering the request itself
// when the body is unusable.
func bindOrder(c *gin.Context, builder *ResponseBuilder) (*dto.OrderRequest, bool) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			builder.Failure(validation.Structural(ve.Field, ve.Message))
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		}
		return nil, false
	}
	return &req, true
}

func toServiceOrder(req *dto.OrderRequest) service.OrderRequest {
	return service.OrderRequest{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Items:        req.Items,
		ClaimedPrice: *req.Price,
		PickupAt:     req.PickupAt,
		CardPayment:  req.CardPayment(),
	}
}

// audit runs fn with the request's logging service, if the router set one.
func audit(c *gin.Context, fn func(service.LoggingService)) {
	if v, exists := c.Get(loggingServiceKey); exists {
		if ls, ok := v.(service.LoggingService); ok && ls != nil {
			fn(ls)
		}
	}
}
