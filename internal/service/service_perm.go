package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/store"
	"github.com/thirstydigital/django/models"
)

// permService is the concrete implementation of PermService.
//
// It resolves permission names through a PermissionRepository but short-circuits
// the two common cases without touching storage: anonymous or inactive users
// hold nothing, active superusers hold everything.
type permService struct {
	permissionRepository store.PermissionRepository
	logger               *logger.Logger
}

// NewPermService constructs a PermService over the given PermissionRepository.
func NewPermService(permissionRepository store.PermissionRepository, logger *logger.Logger) PermService {
	return &permService{
		permissionRepository: permissionRepository,
		logger:               logger,
	}
}

// HasPerm reports whether user holds the permission named in
// "module.codename" form.
//
// Anonymous and inactive users hold no permissions; active superusers hold
// every permission. Repository failures are logged and degrade to false
// rather than propagating, so template rendering never breaks on a
// permission lookup.
func (p *permService) HasPerm(ctx context.Context, user models.User, perm string) bool {
	if user.IsAnonymous() || !user.IsActive {
		return false
	}
	if user.IsSuperuser {
		return true
	}

	perms, err := p.userPermissions(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("id", user.UserID).
			Str("perm", perm).
			Msg("permission lookup failed")
		return false
	}

	for _, granted := range perms {
		if granted == perm {
			return true
		}
	}
	return false
}

// HasModulePerms reports whether user holds any permission within module.
//
// The same anonymous/inactive/superuser short-circuits as HasPerm apply.
func (p *permService) HasModulePerms(ctx context.Context, user models.User, module string) bool {
	if user.IsAnonymous() || !user.IsActive {
		return false
	}
	if user.IsSuperuser {
		return true
	}

	perms, err := p.userPermissions(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("id", user.UserID).
			Str("module", module).
			Msg("permission lookup failed")
		return false
	}

	prefix := module + "."
	for _, granted := range perms {
		if strings.HasPrefix(granted, prefix) {
			return true
		}
	}
	return false
}

// AllPermissions returns the user's full sorted permission set as
// "module.codename" strings.
//
// Anonymous and inactive users get an empty set; superusers get whatever
// the repository knows about, which callers should treat as a lower bound
// since HasPerm grants them everything.
func (p *permService) AllPermissions(ctx context.Context, user models.User) ([]string, error) {
	if user.IsAnonymous() || !user.IsActive {
		return nil, nil
	}

	perms, err := p.userPermissions(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("permission lookup failed: %w", err)
	}

	return perms, nil
}

// userPermissions resolves the user's permission set, consulting the
// request-scoped cache when the context carries one. Failures are not
// cached: the next check retries the repository.
func (p *permService) userPermissions(ctx context.Context, userID int64) ([]string, error) {
	cache, ok := permCacheFromContext(ctx)
	if !ok {
		return p.permissionRepository.UserPermissions(ctx, userID)
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if perms, cached := cache.sets[userID]; cached {
		return perms, nil
	}

	perms, err := p.permissionRepository.UserPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	cache.sets[userID] = perms

	return perms, nil
}
