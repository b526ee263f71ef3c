// Package storage defines persistence contracts for reference content state.
//
// Records carry their JSON wire shape directly: a nil LanguageMap or empty
// group marks an absent field, and absent fields stay absent through store
// round trips. Implementations (see the sqlite subpackage) enforce key
// uniqueness with insert-if-absent semantics.
package storage

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// LanguageMap maps a language tag (e.g. en_US, pt_BR) to a string value.
// A map may cover any subset of languages; it is replaced wholesale on
// update, never merged at the language level.
type LanguageMap map[string]string

// Clone returns an independent copy of the map. Cloning nil returns nil so
// field absence survives copies.
func (m LanguageMap) Clone() LanguageMap {
	if m == nil {
		return nil
	}
	clone := make(LanguageMap, len(m))
	for tag, value := range m {
		clone[tag] = value
	}
	return clone
}

// Reference stores one canonical multilingual reference document.
type Reference struct {
	ReferenceID      string      `json:"referenceId"`
	Label            LanguageMap `json:"label,omitempty"`
	Description      LanguageMap `json:"description,omitempty"`
	ShortDescription LanguageMap `json:"shortDescription,omitempty"`
	Group            string      `json:"group,omitempty"`
}

// Clone returns an independent copy of the reference.
func (r Reference) Clone() Reference {
	r.Label = r.Label.Clone()
	r.Description = r.Description.Clone()
	r.ShortDescription = r.ShortDescription.Clone()
	return r
}

// LabelGroup stores one registered group identifier.
type LabelGroup struct {
	ID string `json:"id"`
}

// ReferenceOverride stores group-specific replacement content for one
// reference. Keyed by the (ReferenceID, Group) pair.
type ReferenceOverride struct {
	ReferenceID      string      `json:"referenceId"`
	Group            string      `json:"group"`
	Label            LanguageMap `json:"label,omitempty"`
	Description      LanguageMap `json:"description,omitempty"`
	ShortDescription LanguageMap `json:"shortDescription,omitempty"`
}

// ClientSetting maps a numeric client identifier to its assigned group.
type ClientSetting struct {
	ClientID int64  `json:"clientId"`
	Group    string `json:"group"`
}

// SchemaDocument stores one registry entry keyed by
// (ClientID, Provider, Name, Type). The schema payload is opaque JSON,
// returned verbatim. Type is part of the key but not of the wire document.
type SchemaDocument struct {
	ClientID string          `json:"_id"`
	Name     string          `json:"name"`
	Provider string          `json:"provider"`
	Subject  string          `json:"subject"`
	Source   string          `json:"source"`
	Type     string          `json:"-"`
	Schema   json.RawMessage `json:"schema"`
}

// ReferenceStore persists canonical reference documents.
type ReferenceStore interface {
	CreateReference(ctx context.Context, ref Reference) error
	GetReference(ctx context.Context, referenceID string) (Reference, error)
	ListReferences(ctx context.Context) ([]Reference, error)
	// ReplaceReference swaps the stored document for the given one wholesale;
	// fields absent from ref become absent in the store.
	ReplaceReference(ctx context.Context, ref Reference) error
	DeleteReference(ctx context.Context, referenceID string) error
}

// LabelGroupStore persists registered group identifiers.
type LabelGroupStore interface {
	CreateLabelGroup(ctx context.Context, group LabelGroup) error
	ListLabelGroups(ctx context.Context) ([]LabelGroup, error)
	DeleteLabelGroup(ctx context.Context, id string) error
}

// OverrideStore persists per-(reference, group) override documents.
type OverrideStore interface {
	CreateOverride(ctx context.Context, override ReferenceOverride) error
	GetOverride(ctx context.Context, referenceID, group string) (ReferenceOverride, error)
	ListOverrides(ctx context.Context, referenceID string) ([]ReferenceOverride, error)
	ReplaceOverride(ctx context.Context, override ReferenceOverride) error
	DeleteOverride(ctx context.Context, referenceID, group string) error
}

// ClientSettingStore persists client-to-group assignments.
type ClientSettingStore interface {
	CreateClientSetting(ctx context.Context, setting ClientSetting) error
	GetClientSetting(ctx context.Context, clientID int64) (ClientSetting, error)
	DeleteClientSetting(ctx context.Context, clientID int64) error
}

// SchemaStore persists schema registry documents.
type SchemaStore interface {
	PutSchema(ctx context.Context, doc SchemaDocument) error
	GetSchema(ctx context.Context, clientID, provider, name, schemaType string) (SchemaDocument, error)
}
