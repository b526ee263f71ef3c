package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/referencehub/internal/storage"
)

// CreateClientSetting inserts one client-to-group assignment.
func (s *Store) CreateClientSetting(ctx context.Context, setting storage.ClientSetting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	group := strings.TrimSpace(setting.Group)
	if group == "" {
		return fmt.Errorf("group is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO client_settings (client_id, group_name) VALUES (?, ?)`,
		setting.ClientID,
		group,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create client setting: %w", err)
	}
	return nil
}

// GetClientSetting returns the assignment for one client identifier.
func (s *Store) GetClientSetting(ctx context.Context, clientID int64) (storage.ClientSetting, error) {
	if err := ctx.Err(); err != nil {
		return storage.ClientSetting{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ClientSetting{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT client_id, group_name FROM client_settings WHERE client_id = ?`,
		clientID,
	)
	var setting storage.ClientSetting
	if err := row.Scan(&setting.ClientID, &setting.Group); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ClientSetting{}, storage.ErrNotFound
		}
		return storage.ClientSetting{}, fmt.Errorf("get client setting: %w", err)
	}
	return setting, nil
}

// DeleteClientSetting removes the assignment for one client identifier.
func (s *Store) DeleteClientSetting(ctx context.Context, clientID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM client_settings WHERE client_id = ?`,
		clientID,
	)
	if err != nil {
		return fmt.Errorf("delete client setting: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete client setting: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
