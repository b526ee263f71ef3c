package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/referencehub/internal/storage"
)

func TestCreateAndGetReference(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	ref := storage.Reference{
		ReferenceID:      "tax-exempt",
		Label:            storage.LanguageMap{"en_US": "Tax Exempt", "pt_BR": "Isento"},
		Description:      storage.LanguageMap{"en_US": "No tax applies"},
		ShortDescription: storage.LanguageMap{"en_US": "No tax"},
		Group:            "default",
	}
	if err := store.CreateReference(ctx, ref); err != nil {
		t.Fatalf("create reference: %v", err)
	}

	got, err := store.GetReference(ctx, "tax-exempt")
	if err != nil {
		t.Fatalf("get reference: %v", err)
	}
	if got.Label["pt_BR"] != "Isento" {
		t.Fatalf("Label[pt_BR] = %q, want %q", got.Label["pt_BR"], "Isento")
	}
	if got.Description["en_US"] != "No tax applies" {
		t.Fatalf("Description[en_US] = %q", got.Description["en_US"])
	}
	if got.Group != "default" {
		t.Fatalf("Group = %q, want %q", got.Group, "default")
	}
}

func TestCreateReferenceRejectsDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	ref := storage.Reference{ReferenceID: "tax", Group: "default"}
	if err := store.CreateReference(ctx, ref); err != nil {
		t.Fatalf("create reference: %v", err)
	}
	if err := store.CreateReference(ctx, ref); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want ErrAlreadyExists", err)
	}
}

func TestGetReferencePreservesAbsentFields(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	ref := storage.Reference{
		ReferenceID: "labels-only",
		Label:       storage.LanguageMap{"en_US": "Label"},
		Group:       "default",
	}
	if err := store.CreateReference(ctx, ref); err != nil {
		t.Fatalf("create reference: %v", err)
	}

	got, err := store.GetReference(ctx, "labels-only")
	if err != nil {
		t.Fatalf("get reference: %v", err)
	}
	if got.Description != nil {
		t.Fatalf("Description = %v, want nil", got.Description)
	}
	if got.ShortDescription != nil {
		t.Fatalf("ShortDescription = %v, want nil", got.ShortDescription)
	}
}

func TestGetReferenceNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	if _, err := store.GetReference(context.Background(), "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing reference error = %v, want ErrNotFound", err)
	}
}

func TestListReferencesOrdersByID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	for _, id := range []string{"zulu", "alpha", "mike"} {
		if err := store.CreateReference(ctx, storage.Reference{ReferenceID: id, Group: "default"}); err != nil {
			t.Fatalf("create reference %q: %v", id, err)
		}
	}

	refs, err := store.ListReferences(ctx)
	if err != nil {
		t.Fatalf("list references: %v", err)
	}
	if len(refs) != 3 {
		t.Fatalf("len(refs) = %d, want 3", len(refs))
	}
	want := []string{"alpha", "mike", "zulu"}
	for i, id := range want {
		if refs[i].ReferenceID != id {
			t.Fatalf("refs[%d] = %q, want %q", i, refs[i].ReferenceID, id)
		}
	}
}

func TestListReferencesEmptyIsNotNil(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	refs, err := store.ListReferences(context.Background())
	if err != nil {
		t.Fatalf("list references: %v", err)
	}
	if refs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(refs) != 0 {
		t.Fatalf("len(refs) = %d, want 0", len(refs))
	}
}

func TestReplaceReferenceDropsAbsentFields(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateReference(ctx, storage.Reference{
		ReferenceID:      "tax",
		Label:            storage.LanguageMap{"en_US": "Tax"},
		Description:      storage.LanguageMap{"en_US": "A levy"},
		ShortDescription: storage.LanguageMap{"en_US": "Levy"},
		Group:            "default",
	}); err != nil {
		t.Fatalf("create reference: %v", err)
	}

	if err := store.ReplaceReference(ctx, storage.Reference{
		ReferenceID: "tax",
		Label:       storage.LanguageMap{"en_US": "Updated Tax"},
	}); err != nil {
		t.Fatalf("replace reference: %v", err)
	}

	got, err := store.GetReference(ctx, "tax")
	if err != nil {
		t.Fatalf("get reference: %v", err)
	}
	if got.Label["en_US"] != "Updated Tax" {
		t.Fatalf("Label[en_US] = %q, want %q", got.Label["en_US"], "Updated Tax")
	}
	if got.Description != nil || got.ShortDescription != nil || got.Group != "" {
		t.Fatalf("expected absent fields to drop, got %+v", got)
	}
}

func TestReplaceReferenceNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	err := store.ReplaceReference(context.Background(), storage.Reference{ReferenceID: "ghost"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("replace missing reference error = %v, want ErrNotFound", err)
	}
}

func TestDeleteReferenceIsTerminal(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateReference(ctx, storage.Reference{ReferenceID: "tax", Group: "default"}); err != nil {
		t.Fatalf("create reference: %v", err)
	}
	if err := store.DeleteReference(ctx, "tax"); err != nil {
		t.Fatalf("delete reference: %v", err)
	}
	if err := store.DeleteReference(ctx, "tax"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("repeat delete error = %v, want ErrNotFound", err)
	}
}
