// Package resolution computes effective reference documents by combining
// stored defaults, group overrides, client-to-group assignments, and
// language projection.
package resolution

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/louisbranch/referencehub/internal/errors"
	"github.com/louisbranch/referencehub/internal/storage"
)

// Selector carries the optional read-time filters of a resolution request.
// A nil ClientID means no client selector; an empty Group means no group
// selector; an empty Language keeps full language maps.
type Selector struct {
	Group    string
	ClientID *int64
	Language string
}

// Engine resolves references against injected store collaborators.
type Engine struct {
	references storage.ReferenceStore
	overrides  storage.OverrideStore
	clients    storage.ClientSettingStore
}

// NewEngine creates a resolution engine over the given stores.
func NewEngine(references storage.ReferenceStore, overrides storage.OverrideStore, clients storage.ClientSettingStore) *Engine {
	return &Engine{
		references: references,
		overrides:  overrides,
		clients:    clients,
	}
}

// EffectiveGroup translates the selector into the group used for override
// lookup. A client selector resolves through the client setting store and
// wins over the group selector; an unknown client is a hard not-found, never
// a silent fallback to unfiltered resolution.
func (e *Engine) EffectiveGroup(ctx context.Context, sel Selector) (string, error) {
	if e == nil {
		return "", fmt.Errorf("resolution engine is not configured")
	}
	if sel.ClientID == nil {
		return sel.Group, nil
	}
	if e.clients == nil {
		return "", fmt.Errorf("client setting store is not configured")
	}
	setting, err := e.clients.GetClientSetting(ctx, *sel.ClientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", apperrors.NotFoundClient(*sel.ClientID)
		}
		return "", fmt.Errorf("resolve client group: %w", err)
	}
	return setting.Group, nil
}

// Resolve returns the effective document for one reference under the
// selector. The language projection is left to the caller via Localize so
// one code path serves both map-shaped and flattened responses.
func (e *Engine) Resolve(ctx context.Context, referenceID string, sel Selector) (storage.Reference, error) {
	if e == nil || e.references == nil {
		return storage.Reference{}, fmt.Errorf("resolution engine is not configured")
	}
	group, err := e.EffectiveGroup(ctx, sel)
	if err != nil {
		return storage.Reference{}, err
	}
	ref, err := e.references.GetReference(ctx, referenceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Reference{}, apperrors.NewNotFound(apperrors.SubjectReference, "referenceID", referenceID)
		}
		return storage.Reference{}, fmt.Errorf("resolve reference: %w", err)
	}
	return e.applyOverride(ctx, ref, group)
}

// ResolveAll returns the effective documents for every stored reference
// under the selector, in stable reference-ID order.
func (e *Engine) ResolveAll(ctx context.Context, sel Selector) ([]storage.Reference, error) {
	if e == nil || e.references == nil {
		return nil, fmt.Errorf("resolution engine is not configured")
	}
	group, err := e.EffectiveGroup(ctx, sel)
	if err != nil {
		return nil, err
	}
	refs, err := e.references.ListReferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve references: %w", err)
	}
	resolved := make([]storage.Reference, 0, len(refs))
	for _, ref := range refs {
		effective, err := e.applyOverride(ctx, ref, group)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, effective)
	}
	return resolved, nil
}

// applyOverride substitutes the override content for (ref, group) when one
// exists. The override's content fields and group replace the base
// document's wholesale; with no override the base passes through unchanged.
func (e *Engine) applyOverride(ctx context.Context, ref storage.Reference, group string) (storage.Reference, error) {
	if group == "" {
		return ref, nil
	}
	if e.overrides == nil {
		return storage.Reference{}, fmt.Errorf("override store is not configured")
	}
	override, err := e.overrides.GetOverride(ctx, ref.ReferenceID, group)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ref, nil
		}
		return storage.Reference{}, fmt.Errorf("resolve override: %w", err)
	}
	return storage.Reference{
		ReferenceID:      override.ReferenceID,
		Group:            override.Group,
		Label:            override.Label,
		Description:      override.Description,
		ShortDescription: override.ShortDescription,
	}, nil
}
