package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/errors"
)

const (
	resetCodePrefix = "reset:"
	revokedPrefix   = "revoked:"
)

// tokenRepository keeps reset codes and revoked session tokens in a TTL'd
// cache, so they expire on their own.
type tokenRepository struct {
	cache *gocache.Cache
}

func NewTokenRepository() repository.TokenRepository {
	return &tokenRepository{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (r *tokenRepository) StoreResetCode(ctx context.Context, email, code string, ttl time.Duration) error {
	r.cache.Set(resetCodePrefix+email, code, ttl)
	return nil
}

func (r *tokenRepository) ValidateResetCode(ctx context.Context, email, code string) error {
	stored, ok := r.cache.Get(resetCodePrefix + email)
	if !ok || stored.(string) != code {
		return errors.Validation("invalid or expired reset code")
	}
	return nil
}

func (r *tokenRepository) InvalidateResetCode(ctx context.Context, email string) error {
	r.cache.Delete(resetCodePrefix + email)
	return nil
}

func (r *tokenRepository) RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	r.cache.Set(revokedPrefix+token, true, ttl)
	return nil
}

func (r *tokenRepository) IsRevoked(ctx context.Context, token string) bool {
	_, revoked := r.cache.Get(revokedPrefix + token)
	return revoked
}
