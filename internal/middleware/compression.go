// Package middleware holds the gin middleware chain of the order API.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// uncompressedPaths serve their own encoding or are scraped by machines.
var uncompressedPaths = []string{"/metrics", "/healthz", "/readyz"}

// Compression gzips responses for clients that accept it, except on the
// probe and metrics endpoints.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(uncompressedPaths))
}
