package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/referencehub/internal/storage"
)

// CreateLabelGroup registers one group identifier.
func (s *Store) CreateLabelGroup(ctx context.Context, group storage.LabelGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(group.ID)
	if id == "" {
		return fmt.Errorf("label group id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO label_groups (id) VALUES (?)`,
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create label group: %w", err)
	}
	return nil
}

// ListLabelGroups returns every registered group ordered by identifier.
func (s *Store) ListLabelGroups(ctx context.Context) ([]storage.LabelGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id FROM label_groups ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list label groups: %w", err)
	}
	defer rows.Close()

	groups := make([]storage.LabelGroup, 0)
	for rows.Next() {
		var group storage.LabelGroup
		if err := rows.Scan(&group.ID); err != nil {
			return nil, fmt.Errorf("list label groups: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list label groups: %w", err)
	}
	return groups, nil
}

// DeleteLabelGroup removes one registered group. Overrides referencing the
// group name are left in place.
func (s *Store) DeleteLabelGroup(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("label group id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM label_groups WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete label group: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete label group: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
