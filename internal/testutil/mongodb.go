//go:build integration

// Package testutil starts MongoDB containers for the integration tests.
//
// A package's TestMain starts one container with SetupTestMainWithMongoDB;
// each test then isolates itself in its own database named by SanitizeDBName.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the server version the repositories are tested against.
// Decimal128 and TTL indexes need 3.4+; 7.0 matches production.
const MongoImage = "mongo:7.0"

// maxDBNameLength keeps generated names well under MongoDB's 64-byte limit.
const maxDBNameLength = 40

// MongoDBContainer is a running MongoDB server.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a dedicated container. Tests that share one per package
// should use SetupTestMainWithMongoDB instead.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", MongoImage, err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	dbCounter  atomic.Uint64
)

// GetSharedMongoDB starts the package container on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = SetupMongoDB(ctx)
	})
	return shared, sharedErr
}

// SetupTestMainWithMongoDB runs m against a shared container and terminates
// it afterwards:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := GetSharedMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration tests need docker: %v\n", err)
		return 1
	}

	code := m.Run()

	// Docker reaps the container anyway; a failed terminate only warns.
	if err := container.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the shared container's URI. It panics when
// TestMain did not start the container.
func GetSharedContainerURI() string {
	if shared == nil {
		panic("testutil: shared MongoDB container not started; call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a unique database name. MongoDB
// rejects / \ . " $ and spaces in database names.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', '"', '$', ' ', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, testName)

	if len(name) > maxDBNameLength {
		name = name[:maxDBNameLength]
	}
	return fmt.Sprintf("%s_%d_%d", name, os.Getpid()%10000, dbCounter.Add(1))
}
