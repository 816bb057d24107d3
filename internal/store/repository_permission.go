package store

import (
	"context"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/thirstydigital/django/internal/logger"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// permissionRepository resolves user permissions against the permissions,
// user_permissions, user_groups, and group_permissions tables.
//
// A permission name is "module.codename": the module groups related
// permissions (e.g. "polls"), the codename names the action
// (e.g. "add_choice").
type permissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPermissionRepository constructs a [PermissionRepository] backed by the
// provided database connection and logger.
func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	logger.Debug().Msg("creating permission repository")
	return &permissionRepository{
		db:     db,
		logger: logger,
	}
}

// UserPermissions returns the union of the user's direct permission grants
// and the grants of every group the user belongs to, as sorted
// "module.codename" strings.
func (r *permissionRepository) UserPermissions(ctx context.Context, userID int64) ([]string, error) {
	perms := make(map[string]struct{})

	direct := psql.Select("p.module", "p.codename").
		From("permissions p").
		Join("user_permissions up ON up.permission_id = p.permission_id").
		Where(sq.Eq{"up.user_id": userID})
	if err := r.collect(ctx, direct, perms); err != nil {
		return nil, fmt.Errorf("direct permission lookup failed: %w", err)
	}

	viaGroups := psql.Select("p.module", "p.codename").
		From("permissions p").
		Join("group_permissions gp ON gp.permission_id = p.permission_id").
		Join("user_groups ug ON ug.group_id = gp.group_id").
		Where(sq.Eq{"ug.user_id": userID})
	if err := r.collect(ctx, viaGroups, perms); err != nil {
		return nil, fmt.Errorf("group permission lookup failed: %w", err)
	}

	names := make([]string, 0, len(perms))
	for name := range perms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (r *permissionRepository) collect(ctx context.Context, builder sq.SelectBuilder, into map[string]struct{}) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.collect").Msg("error building permission query")
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.collect").Msg("error querying permissions")
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var module, codename string
		if err := rows.Scan(&module, &codename); err != nil {
			log.Err(err).Str("func", "*permissionRepository.collect").Msg("error scanning permission row")
			return err
		}
		into[module+"."+codename] = struct{}{}
	}

	return rows.Err()
}
