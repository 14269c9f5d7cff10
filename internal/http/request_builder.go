package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stevesplace/order-service/internal/circuitbreaker"
	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/domain/validation"
	"github.com/stevesplace/order-service/internal/i18n"
	"github.com/stevesplace/order-service/internal/middleware"
	"github.com/stevesplace/order-service/internal/service"
)

var (
	successResponsePool = sync.Pool{
		New: func() any { return &dto.SuccessResponse{} },
	}

	errorResponsePool = sync.Pool{
		New: func() any { return &dto.ErrorResponse{} },
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// RequestBuilder binds request bodies.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a new request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind decodes the JSON body into v and runs its binding rules.
func (b *RequestBuilder) Bind(v any) error {
	return b.c.ShouldBindJSON(v)
}

// Validator is implemented by request DTOs with checks beyond binding tags.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds a T and runs Validate when T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the success and error envelopes. Envelopes are
// pooled; gin serializes synchronously, so they are reused once written.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with a translated message. err, when set, is attached to the
// context for the error log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(statusCode, dto.ErrCodeFromStatus(statusCode), message, nil, err)
}

// ErrorWithMessage aborts with a message that is already final.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.abort(statusCode, dto.ErrCodeFromStatus(statusCode), message, nil, err)
}

// Failure answers an error returned by a service. Validation failures are
// reported with their own message and details; anything else is an
// infrastructure error and gets a translated generic message.
func (b *ResponseBuilder) Failure(err error) {
	if validation.IsFailure(err) {
		status, code := failureStatus(validation.KindOf(err))
		b.abort(status, code, err.Error(), failureDetails(err), nil)
		return
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case unavailable(err):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func (b *ResponseBuilder) abort(statusCode int, code, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = code
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()
	if len(details) > 0 {
		*resp = resp.WithDetails(details)
	}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

func failureStatus(kind validation.Kind) (int, string) {
	switch kind {
	case validation.KindDomain:
		return http.StatusUnprocessableEntity, dto.ErrCodeRuleViolation
	case validation.KindTemporal:
		return http.StatusUnprocessableEntity, dto.ErrCodePickupUnavailable
	case validation.KindReconciliation:
		return http.StatusConflict, dto.ErrCodePriceMismatch
	default:
		return http.StatusBadRequest, dto.ErrCodeInvalidRequest
	}
}

// failureDetails locates a validation failure for the client.
func failureDetails(err error) map[string]string {
	details := map[string]string{"kind": string(validation.KindOf(err))}

	var item *validation.ItemError
	if errors.As(err, &item) {
		details["item"] = strconv.Itoa(item.Index)
		details["category"] = item.Category
	}

	var structural *validation.StructuralError
	var domain *validation.DomainError
	var temporal *validation.TemporalError
	var mismatch *validation.ReconciliationError
	switch {
	case errors.As(err, &structural):
		details["field"] = structural.Field
	case errors.As(err, &domain):
		details["rule"] = string(domain.Rule)
	case errors.As(err, &temporal):
		details["rule"] = string(temporal.Rule)
	case errors.As(err, &mismatch):
		details["claimed"] = mismatch.Claimed.StringFixed(2)
		details["computed"] = mismatch.Computed.StringFixed(2)
	}
	return details
}

func unavailable(err error) bool {
	return errors.Is(err, circuitbreaker.ErrCircuitOpen) ||
		errors.Is(err, service.ErrRepositoryNotConfigured) ||
		mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err)
}
