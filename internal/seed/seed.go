// Package seed loads JSON fixtures into the reference content store for
// local development and acceptance environments.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/louisbranch/referencehub/internal/storage"
)

// Store bundles the persistence contracts the seeder writes through.
type Store interface {
	storage.ReferenceStore
	storage.LabelGroupStore
	storage.OverrideStore
	storage.ClientSettingStore
	storage.SchemaStore
}

// Fixture is the JSON shape of a seed file. Every section is optional.
type Fixture struct {
	References     []storage.Reference         `json:"references"`
	LabelGroups    []storage.LabelGroup        `json:"labelGroups"`
	Overrides      []storage.ReferenceOverride `json:"overrides"`
	ClientSettings []storage.ClientSetting     `json:"clientSettings"`
	Schemas        []SchemaSeed                `json:"schemas"`
}

// SchemaSeed carries a schema registry entry with its type spelled out,
// since the stored document keeps the type out of its wire shape.
type SchemaSeed struct {
	ClientID string          `json:"clientId"`
	Provider string          `json:"provider"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Subject  string          `json:"subject"`
	Source   string          `json:"source"`
	Schema   json.RawMessage `json:"schema"`
}

// Load reads a fixture file from disk.
func Load(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var fixture Fixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return fixture, nil
}

// Apply writes the fixture into the store. Records whose keys already exist
// are skipped so replaying a fixture is idempotent.
func Apply(ctx context.Context, store Store, fixture Fixture) error {
	if store == nil {
		return errors.New("store is required")
	}

	created, skipped := 0, 0
	for _, ref := range fixture.References {
		if ref.Group == "" {
			ref.Group = "default"
		}
		err := store.CreateReference(ctx, ref)
		if errors.Is(err, storage.ErrAlreadyExists) {
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed reference %q: %w", ref.ReferenceID, err)
		}
		created++
	}

	for _, group := range fixture.LabelGroups {
		err := store.CreateLabelGroup(ctx, group)
		if errors.Is(err, storage.ErrAlreadyExists) {
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed label group %q: %w", group.ID, err)
		}
		created++
	}

	for _, override := range fixture.Overrides {
		err := store.CreateOverride(ctx, override)
		if errors.Is(err, storage.ErrAlreadyExists) {
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed override %q/%q: %w", override.ReferenceID, override.Group, err)
		}
		created++
	}

	for _, setting := range fixture.ClientSettings {
		err := store.CreateClientSetting(ctx, setting)
		if errors.Is(err, storage.ErrAlreadyExists) {
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("seed client setting %d: %w", setting.ClientID, err)
		}
		created++
	}

	for _, schema := range fixture.Schemas {
		doc := storage.SchemaDocument{
			ClientID: schema.ClientID,
			Provider: schema.Provider,
			Name:     schema.Name,
			Type:     schema.Type,
			Subject:  schema.Subject,
			Source:   schema.Source,
			Schema:   schema.Schema,
		}
		if doc.Subject == "" {
			doc.Subject = fmt.Sprintf("%s-%s-%s", doc.Provider, doc.Name, doc.Type)
		}
		if err := store.PutSchema(ctx, doc); err != nil {
			return fmt.Errorf("seed schema %q: %w", schema.Name, err)
		}
		created++
	}

	log.Printf("seed applied: %d created, %d skipped", created, skipped)
	return nil
}
