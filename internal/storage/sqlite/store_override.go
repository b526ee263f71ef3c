package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/referencehub/internal/storage"
)

// CreateOverride inserts one (reference, group) override document.
func (s *Store) CreateOverride(ctx context.Context, override storage.ReferenceOverride) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	referenceID := strings.TrimSpace(override.ReferenceID)
	group := strings.TrimSpace(override.Group)
	if referenceID == "" {
		return fmt.Errorf("reference id is required")
	}
	if group == "" {
		return fmt.Errorf("group is required")
	}

	label, err := languageMapParam(override.Label)
	if err != nil {
		return err
	}
	description, err := languageMapParam(override.Description)
	if err != nil {
		return err
	}
	shortDescription, err := languageMapParam(override.ShortDescription)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO reference_overrides (
		   reference_id,
		   group_name,
		   label,
		   description,
		   short_description
		 ) VALUES (?, ?, ?, ?, ?)`,
		referenceID,
		group,
		label,
		description,
		shortDescription,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create override: %w", err)
	}
	return nil
}

// GetOverride returns the override stored for one (reference, group) pair.
func (s *Store) GetOverride(ctx context.Context, referenceID, group string) (storage.ReferenceOverride, error) {
	if err := ctx.Err(); err != nil {
		return storage.ReferenceOverride{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ReferenceOverride{}, fmt.Errorf("storage is not configured")
	}
	referenceID = strings.TrimSpace(referenceID)
	group = strings.TrimSpace(group)
	if referenceID == "" {
		return storage.ReferenceOverride{}, fmt.Errorf("reference id is required")
	}
	if group == "" {
		return storage.ReferenceOverride{}, fmt.Errorf("group is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT reference_id, group_name, label, description, short_description
		   FROM reference_overrides
		  WHERE reference_id = ? AND group_name = ?`,
		referenceID,
		group,
	)
	override, err := scanOverride(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ReferenceOverride{}, storage.ErrNotFound
		}
		return storage.ReferenceOverride{}, fmt.Errorf("get override: %w", err)
	}
	return override, nil
}

// ListOverrides returns every override stored for one reference, ordered by
// group name.
func (s *Store) ListOverrides(ctx context.Context, referenceID string) ([]storage.ReferenceOverride, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return nil, fmt.Errorf("reference id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT reference_id, group_name, label, description, short_description
		   FROM reference_overrides
		  WHERE reference_id = ?
		  ORDER BY group_name ASC`,
		referenceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()

	overrides := make([]storage.ReferenceOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list overrides: %w", err)
		}
		overrides = append(overrides, override)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return overrides, nil
}

// ReplaceOverride swaps the stored override content for the given one.
func (s *Store) ReplaceOverride(ctx context.Context, override storage.ReferenceOverride) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	referenceID := strings.TrimSpace(override.ReferenceID)
	group := strings.TrimSpace(override.Group)
	if referenceID == "" {
		return fmt.Errorf("reference id is required")
	}
	if group == "" {
		return fmt.Errorf("group is required")
	}

	label, err := languageMapParam(override.Label)
	if err != nil {
		return err
	}
	description, err := languageMapParam(override.Description)
	if err != nil {
		return err
	}
	shortDescription, err := languageMapParam(override.ShortDescription)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE reference_overrides
		    SET label = ?, description = ?, short_description = ?
		  WHERE reference_id = ? AND group_name = ?`,
		label,
		description,
		shortDescription,
		referenceID,
		group,
	)
	if err != nil {
		return fmt.Errorf("replace override: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace override: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteOverride removes the override for one (reference, group) pair.
func (s *Store) DeleteOverride(ctx context.Context, referenceID, group string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	referenceID = strings.TrimSpace(referenceID)
	group = strings.TrimSpace(group)
	if referenceID == "" {
		return fmt.Errorf("reference id is required")
	}
	if group == "" {
		return fmt.Errorf("group is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM reference_overrides WHERE reference_id = ? AND group_name = ?`,
		referenceID,
		group,
	)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanOverride(scan func(...any) error) (storage.ReferenceOverride, error) {
	var override storage.ReferenceOverride
	var label, description, shortDescription sql.NullString
	if err := scan(&override.ReferenceID, &override.Group, &label, &description, &shortDescription); err != nil {
		return storage.ReferenceOverride{}, err
	}
	var err error
	if override.Label, err = languageMapValue(label); err != nil {
		return storage.ReferenceOverride{}, err
	}
	if override.Description, err = languageMapValue(description); err != nil {
		return storage.ReferenceOverride{}, err
	}
	if override.ShortDescription, err = languageMapValue(shortDescription); err != nil {
		return storage.ReferenceOverride{}, err
	}
	return override, nil
}
