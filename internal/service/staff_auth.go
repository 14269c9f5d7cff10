package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/domain/dto"
)

var (
	// ErrInvalidStaffSecret is returned when the store secret does not match.
	ErrInvalidStaffSecret = errors.New("invalid staff secret")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrStaffAuthNotConfigured is returned when no staff secret hash is set.
	ErrStaffAuthNotConfigured = errors.New("staff authentication is not configured")
)

const staffIssuer = "order-service"

// defaultStaffName is recorded when a token is issued without a name.
const defaultStaffName = "staff"

// ClaimsWithJWT extends dto.StaffClaims with the registered JWT claims.
type ClaimsWithJWT struct {
	dto.StaffClaims
	jwt.RegisteredClaims
}

// StaffAuthService issues and checks staff access tokens.
type StaffAuthService interface {
	// IssueToken checks the store secret and signs a token for staffName.
	IssueToken(ctx context.Context, secret, staffName string) (*dto.StaffTokenResponse, error)
	// ValidateToken verifies a token and returns its claims.
	ValidateToken(tokenString string) (*dto.StaffClaims, error)
}

// StaffAuthServiceImpl implements StaffAuthService with a bcrypt-hashed
// store secret and HS256 tokens.
type StaffAuthServiceImpl struct {
	secretHash []byte
	signingKey []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

// NewStaffAuthService creates a staff auth service from the auth config.
func NewStaffAuthService(cfg config.AuthConfig) *StaffAuthServiceImpl {
	return &StaffAuthServiceImpl{
		secretHash: []byte(cfg.StaffSecretHash),
		signingKey: []byte(cfg.JWTSecretKey),
		tokenTTL:   cfg.AccessTokenTTL,
		now:        time.Now,
	}
}

// IssueToken implements StaffAuthService.
func (s *StaffAuthServiceImpl) IssueToken(_ context.Context, secret, staffName string) (*dto.StaffTokenResponse, error) {
	if len(s.secretHash) == 0 {
		return nil, ErrStaffAuthNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(s.secretHash, []byte(secret)); err != nil {
		return nil, ErrInvalidStaffSecret
	}

	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		staffName = defaultStaffName
	}

	now := s.now()
	claims := &ClaimsWithJWT{
		StaffClaims: dto.StaffClaims{Staff: staffName},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    staffIssuer,
			Subject:   staffName,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign staff token: %w", err)
	}

	return &dto.StaffTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken implements StaffAuthService.
func (s *StaffAuthServiceImpl) ValidateToken(tokenString string) (*dto.StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(staffIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claims.StaffClaims, nil
	}
	return nil, ErrInvalidToken
}

var _ StaffAuthService = (*StaffAuthServiceImpl)(nil)
