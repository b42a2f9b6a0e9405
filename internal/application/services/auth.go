package services

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"filevault-api/internal/application/ports"
	"filevault-api/internal/domain/principal"
	"filevault-api/internal/infrastructure/jwt"
)

const tokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	principalRepository principal.Repository
	jwtService          *jwt.Service
	mCounter            *prometheus.CounterVec
}

func NewAuthService(
	principalRepository principal.Repository,
	jwtService *jwt.Service,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		principalRepository: principalRepository,
		jwtService:          jwtService,
		mCounter:            mCounter,
	}
}

func (as *AuthService) Signup(ctx context.Context, email, password, displayName string) (*principal.Principal, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	p, err := as.principalRepository.CreatePrincipal(ctx, principal.Principal{
		Email:        email,
		PasswordHash: &hashStr,
		DisplayName:  displayName,
	})
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("principals_created_total").Inc()

	return p, nil
}

// Login verifies the submitted password against the stored hash before
// issuing a token; a token is never issued on lookup alone.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, *principal.Principal, error) {
	p, err := as.principalRepository.FetchByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if p == nil || p.PasswordHash == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*p.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(p.UUID.String(), tokenTTL)
	if err != nil {
		return "", nil, ErrFailedToGenerateToken
	}

	return token, p, nil
}
