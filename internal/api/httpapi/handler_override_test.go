package httpapi

import (
	"net/http"
	"testing"
)

func TestCreateOverrideRequiresReference(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := doJSON(t, api, http.MethodPost, "/references/ghost/label-groups", map[string]any{
		"group": "sales",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	problem := decodeProblem(t, rec)
	if problem.Code != "REFERENCE_NOT_FOUND" {
		t.Fatalf("code = %q, want %q", problem.Code, "REFERENCE_NOT_FOUND")
	}
	if got := problem.Arguments["referenceID"]; got != "ghost" {
		t.Fatalf("arguments[referenceID] = %q", got)
	}
}

func TestCreateOverrideRequiresGroupInBody(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	createReference(t, api, map[string]any{"referenceId": "tax"})

	rec := doJSON(t, api, http.MethodPost, "/references/tax/label-groups", map[string]any{
		"label": map[string]string{"en_US": "No group"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decodeProblem(t, rec).Code; got != "INVALID_BODY" {
		t.Fatalf("code = %q, want %q", got, "INVALID_BODY")
	}
}

func TestCreateOverrideDuplicatePair(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	createReference(t, api, map[string]any{"referenceId": "tax"})
	seedOverride(t, api, "tax", map[string]any{"group": "sales"})

	rec := doJSON(t, api, http.MethodPost, "/references/tax/label-groups", map[string]any{
		"group": "sales",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if got := decodeProblem(t, rec).Code; got != "REFERENCE_DUPLICATED" {
		t.Fatalf("code = %q, want %q", got, "REFERENCE_DUPLICATED")
	}
}

func TestListOverridesEnvelope(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	createReference(t, api, map[string]any{"referenceId": "tax"})
	seedOverride(t, api, "tax", map[string]any{"group": "sales", "label": map[string]string{"en_US": "Sales"}})
	seedOverride(t, api, "tax", map[string]any{"group": "marketing", "label": map[string]string{"en_US": "Marketing"}})

	rec := doJSON(t, api, http.MethodGet, "/references/tax/label-groups", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		References []struct {
			ReferenceID string            `json:"referenceId"`
			Group       string            `json:"group"`
			Label       map[string]string `json:"label"`
		} `json:"references"`
	}
	decodeBody(t, rec, &body)
	if len(body.References) != 2 {
		t.Fatalf("len(references) = %d, want 2", len(body.References))
	}
	if body.References[0].Group != "marketing" || body.References[1].Group != "sales" {
		t.Fatalf("groups = %q, %q; want marketing, sales", body.References[0].Group, body.References[1].Group)
	}
}

func TestListOverridesUnknownReference(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := doJSON(t, api, http.MethodGet, "/references/ghost/label-groups", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeProblem(t, rec).Code; got != "REFERENCE_NOT_FOUND" {
		t.Fatalf("code = %q, want %q", got, "REFERENCE_NOT_FOUND")
	}
}

func TestUpdateOverrideTwoTierNotFound(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	createReference(t, api, map[string]any{"referenceId": "tax"})
	seedOverride(t, api, "tax", map[string]any{"group": "sales"})

	// Unknown reference wins over unknown group.
	rec := doJSON(t, api, http.MethodPut, "/references/ghost/label-groups/sales", map[string]any{
		"label": map[string]string{"en_US": "x"},
	})
	if got := decodeProblem(t, rec).Code; got != "REFERENCE_NOT_FOUND" {
		t.Fatalf("code = %q, want %q", got, "REFERENCE_NOT_FOUND")
	}

	rec = doJSON(t, api, http.MethodPut, "/references/tax/label-groups/ghost", map[string]any{
		"label": map[string]string{"en_US": "x"},
	})
	problem := decodeProblem(t, rec)
	if problem.Code != "LABEL_GROUP_NOT_FOUND" {
		t.Fatalf("code = %q, want %q", problem.Code, "LABEL_GROUP_NOT_FOUND")
	}
	if got := problem.Arguments["groupID"]; got != "ghost" {
		t.Fatalf("arguments[groupID] = %q", got)
	}
}

func TestUpdateOverrideReplacesContent(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	createReference(t, api, map[string]any{"referenceId": "tax"})
	seedOverride(t, api, "tax", map[string]any{
		"group":       "sales",
		"label":       map[string]string{"en_US": "Old"},
		"description": map[string]string{"en_US": "Old description"},
	})

	rec := doJSON(t, api, http.MethodPut, "/references/tax/label-groups/sales", map[string]any{
		"label": map[string]string{"en_US": "New"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["group"] != "sales" {
		t.Fatalf("group = %v, want %q", body["group"], "sales")
	}
	if _, present := body["description"]; present {
		t.Fatalf("description = %v, want dropped", body["description"])
	}
}

func TestDeleteOverrideTwoTierNotFound(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	createReference(t, api, map[string]any{"referenceId": "tax"})
	seedOverride(t, api, "tax", map[string]any{"group": "sales"})

	rec := doJSON(t, api, http.MethodDelete, "/references/ghost/label-groups/sales", nil)
	if got := decodeProblem(t, rec).Code; got != "REFERENCE_NOT_FOUND" {
		t.Fatalf("code = %q, want %q", got, "REFERENCE_NOT_FOUND")
	}

	rec = doJSON(t, api, http.MethodDelete, "/references/tax/label-groups/ghost", nil)
	if got := decodeProblem(t, rec).Code; got != "LABEL_GROUP_NOT_FOUND" {
		t.Fatalf("code = %q, want %q", got, "LABEL_GROUP_NOT_FOUND")
	}

	rec = doJSON(t, api, http.MethodDelete, "/references/tax/label-groups/sales", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
