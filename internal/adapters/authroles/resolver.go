package authroles

import (
	"context"
	"log/slog"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/ports"
)

// Resolver maps an authenticated identity to exactly one role. Emails on
// the admin allow-list resolve to admin without touching the profile
// store; everyone else gets the role stored on their profile. Lookup
// failures degrade to tourist so a flaky database can never lock a user
// into a privileged role, only out of one.
type Resolver struct {
	admins map[string]struct{}
	lookup ports.ProfileRoleLookup
	logger *slog.Logger
}

// NewResolver creates a Resolver. Allow-list emails are normalized; the
// lookup may be nil, in which case every non-admin resolves to tourist.
func NewResolver(adminEmails []string, lookup ports.ProfileRoleLookup, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if n := domainauth.NormalizeEmail(e); n != "" {
			admins[n] = struct{}{}
		}
	}
	return &Resolver{admins: admins, lookup: lookup, logger: logger}
}

// Resolve returns the single role of an identity.
func (r *Resolver) Resolve(ctx context.Context, identity domainauth.Identity) domainauth.Role {
	email := domainauth.NormalizeEmail(identity.Email)
	if _, ok := r.admins[email]; ok {
		return domainauth.RoleAdmin
	}

	if r.lookup == nil {
		return domainauth.RoleTourist
	}

	role, err := r.lookup.RoleByID(ctx, identity.UserID)
	if err != nil {
		r.logger.WarnContext(ctx, "role lookup failed, falling back to tourist",
			"user_id", identity.UserID, "err", err)
		return domainauth.RoleTourist
	}
	if !role.Valid() {
		return domainauth.RoleTourist
	}
	return role
}
