package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/referencehub/internal/storage"
)

// PutSchema stores one schema registry document, replacing any existing
// entry for the same (client, provider, name, type) key.
func (s *Store) PutSchema(ctx context.Context, doc storage.SchemaDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	clientID := strings.TrimSpace(doc.ClientID)
	provider := strings.TrimSpace(doc.Provider)
	name := strings.TrimSpace(doc.Name)
	schemaType := strings.TrimSpace(doc.Type)
	if clientID == "" || provider == "" || name == "" || schemaType == "" {
		return fmt.Errorf("schema key is required")
	}
	if len(doc.Schema) == 0 {
		return fmt.Errorf("schema payload is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO schema_documents (
		   client_id, provider, name, schema_type, subject, source, schema
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (client_id, provider, name, schema_type)
		 DO UPDATE SET subject = excluded.subject,
		               source = excluded.source,
		               schema = excluded.schema`,
		clientID,
		provider,
		name,
		schemaType,
		doc.Subject,
		doc.Source,
		string(doc.Schema),
	)
	if err != nil {
		return fmt.Errorf("put schema: %w", err)
	}
	return nil
}

// GetSchema returns one schema registry document by key.
func (s *Store) GetSchema(ctx context.Context, clientID, provider, name, schemaType string) (storage.SchemaDocument, error) {
	if err := ctx.Err(); err != nil {
		return storage.SchemaDocument{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SchemaDocument{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT client_id, provider, name, schema_type, subject, source, schema
		   FROM schema_documents
		  WHERE client_id = ? AND provider = ? AND name = ? AND schema_type = ?`,
		strings.TrimSpace(clientID),
		strings.TrimSpace(provider),
		strings.TrimSpace(name),
		strings.TrimSpace(schemaType),
	)
	var doc storage.SchemaDocument
	var schema string
	if err := row.Scan(&doc.ClientID, &doc.Provider, &doc.Name, &doc.Type, &doc.Subject, &doc.Source, &schema); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.SchemaDocument{}, storage.ErrNotFound
		}
		return storage.SchemaDocument{}, fmt.Errorf("get schema: %w", err)
	}
	doc.Schema = []byte(schema)
	return doc, nil
}
