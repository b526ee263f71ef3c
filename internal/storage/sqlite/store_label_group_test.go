package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/referencehub/internal/storage"
)

func TestCreateAndListLabelGroups(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	for _, id := range []string{"sales", "marketing"} {
		if err := store.CreateLabelGroup(ctx, storage.LabelGroup{ID: id}); err != nil {
			t.Fatalf("create label group %q: %v", id, err)
		}
	}

	groups, err := store.ListLabelGroups(ctx)
	if err != nil {
		t.Fatalf("list label groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].ID != "marketing" || groups[1].ID != "sales" {
		t.Fatalf("groups = %q, %q; want marketing, sales", groups[0].ID, groups[1].ID)
	}
}

func TestCreateLabelGroupRejectsDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateLabelGroup(ctx, storage.LabelGroup{ID: "sales"}); err != nil {
		t.Fatalf("create label group: %v", err)
	}
	if err := store.CreateLabelGroup(ctx, storage.LabelGroup{ID: "sales"}); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want ErrAlreadyExists", err)
	}
}

func TestDeleteLabelGroup(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateLabelGroup(ctx, storage.LabelGroup{ID: "sales"}); err != nil {
		t.Fatalf("create label group: %v", err)
	}
	if err := store.DeleteLabelGroup(ctx, "sales"); err != nil {
		t.Fatalf("delete label group: %v", err)
	}
	if err := store.DeleteLabelGroup(ctx, "sales"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("repeat delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteLabelGroupDoesNotCascadeToOverrides(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateLabelGroup(ctx, storage.LabelGroup{ID: "sales"}); err != nil {
		t.Fatalf("create label group: %v", err)
	}
	if err := store.CreateOverride(ctx, storage.ReferenceOverride{ReferenceID: "tax", Group: "sales"}); err != nil {
		t.Fatalf("create override: %v", err)
	}
	if err := store.DeleteLabelGroup(ctx, "sales"); err != nil {
		t.Fatalf("delete label group: %v", err)
	}

	if _, err := store.GetOverride(ctx, "tax", "sales"); err != nil {
		t.Fatalf("expected override to survive group delete, got %v", err)
	}
}
