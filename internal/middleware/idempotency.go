package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 10 * time.Minute
)

// cachedResponse stores a completed response together with the hash of the
// request body that produced it.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	BodyHash    string
	Timestamp   time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL),
		Enabled: true,
	}
}

// Stop ends the cache cleanup goroutine.
func (cfg IdempotencyConfig) Stop() {
	if cfg.Cache != nil {
		cfg.Cache.Stop()
	}
}

// Idempotency returns a middleware that makes order placement safe to retry.
// A POST carrying an Idempotency-Key that already completed successfully is
// answered from the cache without running the handler again. Reusing a key
// with a different body is rejected with 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := key + " " + c.Request.URL.Path
		bodyHash := hashBody(c.Request)

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			if cached.BodyHash != bodyHash {
				message := i18n.GetTranslator().Translate(i18n.ErrKeyConflict, i18n.GetLocale(c))
				errorResp := dto.NewError(dto.ErrCodeConflict, message).
					WithRequestID(GetRequestID(c)).
					WithDetails(map[string]string{"header": IdempotencyKeyHeader})
				c.AbortWithStatusJSON(http.StatusConflict, errorResp)
				return
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		c.Writer = writer

		c.Next()

		if writer.statusCode >= 200 && writer.statusCode < 300 {
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode:  writer.statusCode,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
				BodyHash:    bodyHash,
			})
		}
	}
}

// hashBody returns the hex SHA-256 of the request body and restores the body
// for the handler.
func hashBody(req *http.Request) string {
	hasher := sha256.New()
	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write(bodyBytes)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// responseWriter captures the response for caching.
type responseWriter struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
