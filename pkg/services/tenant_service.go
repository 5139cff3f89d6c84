package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/tenant"
)

// TenantService resolves and authenticates tenants for incoming webhooks.
type TenantService struct {
	client *ent.Client
}

// NewTenantService creates a new TenantService
func NewTenantService(client *ent.Client) *TenantService {
	return &TenantService{client: client}
}

// ResolveByDomain returns the tenant owning a webhook domain.
func (s *TenantService) ResolveByDomain(ctx context.Context, domain string) (*ent.Tenant, error) {
	if domain == "" {
		return nil, NewValidationError("domain", "required")
	}
	t, err := s.client.Tenant.Query().
		Where(tenant.Domain(domain)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}
	return t, nil
}

// Authenticate validates the carrier headers against the resolved tenant.
// The API-key comparison is constant-time.
func (s *TenantService) Authenticate(t *ent.Tenant, headerDomain, apiKey string) error {
	if !t.Enabled {
		return ErrTenantDisabled
	}
	if headerDomain != t.Domain {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(t.APIKey)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
