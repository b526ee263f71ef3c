package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/referencehub/internal/storage"
)

// CreateReference inserts one reference document.
func (s *Store) CreateReference(ctx context.Context, ref storage.Reference) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	referenceID := strings.TrimSpace(ref.ReferenceID)
	if referenceID == "" {
		return fmt.Errorf("reference id is required")
	}

	label, err := languageMapParam(ref.Label)
	if err != nil {
		return err
	}
	description, err := languageMapParam(ref.Description)
	if err != nil {
		return err
	}
	shortDescription, err := languageMapParam(ref.ShortDescription)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO reference_documents (
		   reference_id,
		   label,
		   description,
		   short_description,
		   group_name
		 ) VALUES (?, ?, ?, ?, ?)`,
		referenceID,
		label,
		description,
		shortDescription,
		nullableString(ref.Group),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create reference: %w", err)
	}
	return nil
}

// GetReference returns one reference document by reference ID.
func (s *Store) GetReference(ctx context.Context, referenceID string) (storage.Reference, error) {
	if err := ctx.Err(); err != nil {
		return storage.Reference{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Reference{}, fmt.Errorf("storage is not configured")
	}
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return storage.Reference{}, fmt.Errorf("reference id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT reference_id, label, description, short_description, group_name
		   FROM reference_documents
		  WHERE reference_id = ?`,
		referenceID,
	)
	ref, err := scanReference(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Reference{}, storage.ErrNotFound
		}
		return storage.Reference{}, fmt.Errorf("get reference: %w", err)
	}
	return ref, nil
}

// ListReferences returns every reference document ordered by reference ID.
func (s *Store) ListReferences(ctx context.Context) ([]storage.Reference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT reference_id, label, description, short_description, group_name
		   FROM reference_documents
		  ORDER BY reference_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer rows.Close()

	refs := make([]storage.Reference, 0)
	for rows.Next() {
		ref, err := scanReference(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list references: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	return refs, nil
}

// ReplaceReference swaps the stored document for ref wholesale. Columns for
// fields absent from ref become NULL.
func (s *Store) ReplaceReference(ctx context.Context, ref storage.Reference) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	referenceID := strings.TrimSpace(ref.ReferenceID)
	if referenceID == "" {
		return fmt.Errorf("reference id is required")
	}

	label, err := languageMapParam(ref.Label)
	if err != nil {
		return err
	}
	description, err := languageMapParam(ref.Description)
	if err != nil {
		return err
	}
	shortDescription, err := languageMapParam(ref.ShortDescription)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE reference_documents
		    SET label = ?, description = ?, short_description = ?, group_name = ?
		  WHERE reference_id = ?`,
		label,
		description,
		shortDescription,
		nullableString(ref.Group),
		referenceID,
	)
	if err != nil {
		return fmt.Errorf("replace reference: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace reference: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteReference removes one reference document.
func (s *Store) DeleteReference(ctx context.Context, referenceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return fmt.Errorf("reference id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM reference_documents WHERE reference_id = ?`,
		referenceID,
	)
	if err != nil {
		return fmt.Errorf("delete reference: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete reference: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanReference(scan func(...any) error) (storage.Reference, error) {
	var ref storage.Reference
	var label, description, shortDescription, group sql.NullString
	if err := scan(&ref.ReferenceID, &label, &description, &shortDescription, &group); err != nil {
		return storage.Reference{}, err
	}
	var err error
	if ref.Label, err = languageMapValue(label); err != nil {
		return storage.Reference{}, err
	}
	if ref.Description, err = languageMapValue(description); err != nil {
		return storage.Reference{}, err
	}
	if ref.ShortDescription, err = languageMapValue(shortDescription); err != nil {
		return storage.Reference{}, err
	}
	if group.Valid {
		ref.Group = group.String
	}
	return ref, nil
}
