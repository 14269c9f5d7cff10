//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stevesplace/order-service/config"
)

func TestInitializeStaffAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("store-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantNil bool
	}{
		{
			name:    "auth disabled",
			cfg:     config.AuthConfig{Enabled: false, StaffSecretHash: string(hash)},
			wantNil: true,
		},
		{
			name:    "no staff secret hash",
			cfg:     config.AuthConfig{Enabled: true},
			wantNil: true,
		},
		{
			name:    "hash is not bcrypt",
			cfg:     config.AuthConfig{Enabled: true, StaffSecretHash: "store-secret"},
			wantNil: true,
		},
		{
			name: "default jwt secret",
			cfg: config.AuthConfig{
				Enabled:         true,
				StaffSecretHash: string(hash),
				JWTSecretKey:    insecureJWTSecret,
				AccessTokenTTL:  time.Hour,
			},
			wantNil: true,
		},
		{
			name: "empty jwt secret",
			cfg: config.AuthConfig{
				Enabled:         true,
				StaffSecretHash: string(hash),
				AccessTokenTTL:  time.Hour,
			},
			wantNil: true,
		},
		{
			name: "valid hash",
			cfg: config.AuthConfig{
				Enabled:         true,
				StaffSecretHash: string(hash),
				JWTSecretKey:    "a-long-random-signing-key",
				AccessTokenTTL:  time.Hour,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := InitializeStaffAuth(tt.cfg)
			if tt.wantNil {
				assert.Nil(t, svc)
				return
			}
			require.NotNil(t, svc)

			token, err := svc.IssueToken(t.Context(), "store-secret", "steve")
			require.NoError(t, err)
			claims, err := svc.ValidateToken(token.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "steve", claims.Staff)
		})
	}
}
