package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/service"
)

const auditWriteTimeout = 5 * time.Second

// AuditLog records a customer or staff action such as a placed order or a
// new closure.
func AuditLog(loggingService service.LoggingService, c *gin.Context, action model.ActionType, message string, fields map[string]any) {
	if loggingService == nil {
		return
	}
	dispatchLog(loggingService, auditEntry(c, "info", action, message, fields))
}

// AuditLogError records a rejected action along with the reason.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, action model.ActionType, message string, err error, fields map[string]any) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "warn", action, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	dispatchLog(loggingService, entry)
}

func auditEntry(c *gin.Context, level string, action model.ActionType, message string, fields map[string]any) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Actor:      GetStaff(c),
		ActionType: action,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}

// dispatchLog hands the entry to the async logger, or writes it from a
// short-lived goroutine when none is running.
func dispatchLog(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
