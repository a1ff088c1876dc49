package authroles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
)

type stubRoleLookup struct {
	role domainauth.Role
	err  error
}

func (s stubRoleLookup) RoleByID(_ context.Context, _ string) (domainauth.Role, error) {
	return s.role, s.err
}

func TestResolver_AdminAllowList(t *testing.T) {
	resolver := NewResolver([]string{"breno@ceo.com"}, stubRoleLookup{role: domainauth.RoleGuide}, nil)
	ctx := context.Background()

	// Allow-list wins over the stored role, regardless of email casing.
	role := resolver.Resolve(ctx, domainauth.Identity{UserID: "u1", Email: "Breno@CEO.com"})
	assert.Equal(t, domainauth.RoleAdmin, role)
}

func TestResolver_StoredRole(t *testing.T) {
	resolver := NewResolver([]string{"breno@ceo.com"}, stubRoleLookup{role: domainauth.RoleGuide}, nil)
	ctx := context.Background()

	role := resolver.Resolve(ctx, domainauth.Identity{UserID: "u2", Email: "guide@example.com"})
	assert.Equal(t, domainauth.RoleGuide, role)
}

func TestResolver_LookupFailureFallsBackToTourist(t *testing.T) {
	resolver := NewResolver(nil, stubRoleLookup{err: errors.New("db down")}, nil)
	ctx := context.Background()

	role := resolver.Resolve(ctx, domainauth.Identity{UserID: "u3", Email: "anyone@example.com"})
	assert.Equal(t, domainauth.RoleTourist, role)
}

func TestResolver_NilLookup(t *testing.T) {
	resolver := NewResolver([]string{"breno@ceo.com"}, nil, nil)
	ctx := context.Background()

	role := resolver.Resolve(ctx, domainauth.Identity{UserID: "u4", Email: "tourist@example.com"})
	assert.Equal(t, domainauth.RoleTourist, role)
}

func TestResolver_InvalidStoredRole(t *testing.T) {
	resolver := NewResolver(nil, stubRoleLookup{role: domainauth.Role("banana")}, nil)
	ctx := context.Background()

	role := resolver.Resolve(ctx, domainauth.Identity{UserID: "u5", Email: "odd@example.com"})
	assert.Equal(t, domainauth.RoleTourist, role)
}
