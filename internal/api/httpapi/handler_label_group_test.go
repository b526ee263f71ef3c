package httpapi

import (
	"net/http"
	"testing"
)

func TestCreateLabelGroup(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := doJSON(t, api, http.MethodPost, "/label-groups", map[string]any{"id": "sales"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["id"] != "sales" {
		t.Fatalf("id = %q, want %q", body["id"], "sales")
	}
}

func TestCreateLabelGroupDuplicate(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	payload := map[string]any{"id": "sales"}
	if rec := doJSON(t, api, http.MethodPost, "/label-groups", payload); rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	rec := doJSON(t, api, http.MethodPost, "/label-groups", payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	problem := decodeProblem(t, rec)
	if problem.Code != "LABEL_GROUP_DUPLICATED" {
		t.Fatalf("code = %q, want %q", problem.Code, "LABEL_GROUP_DUPLICATED")
	}
	if problem.Detail != "label group already exists" {
		t.Fatalf("detail = %q", problem.Detail)
	}
}

func TestCreateLabelGroupMissingID(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := doJSON(t, api, http.MethodPost, "/label-groups", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decodeProblem(t, rec).Code; got != "INVALID_BODY" {
		t.Fatalf("code = %q, want %q", got, "INVALID_BODY")
	}
}

func TestListLabelGroupsEnvelope(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	for _, id := range []string{"sales", "marketing"} {
		if rec := doJSON(t, api, http.MethodPost, "/label-groups", map[string]any{"id": id}); rec.Code != http.StatusCreated {
			t.Fatalf("create %q status = %d", id, rec.Code)
		}
	}

	rec := doJSON(t, api, http.MethodGet, "/label-groups", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		LabelGroups []map[string]string `json:"labelGroups"`
	}
	decodeBody(t, rec, &body)
	if len(body.LabelGroups) != 2 {
		t.Fatalf("len(labelGroups) = %d, want 2", len(body.LabelGroups))
	}
}

func TestDeleteLabelGroup(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	if rec := doJSON(t, api, http.MethodPost, "/label-groups", map[string]any{"id": "sales"}); rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	rec := doJSON(t, api, http.MethodDelete, "/label-groups/sales", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	rec = doJSON(t, api, http.MethodDelete, "/label-groups/sales", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	problem := decodeProblem(t, rec)
	if problem.Code != "LABEL_GROUP_NOT_FOUND" {
		t.Fatalf("code = %q, want %q", problem.Code, "LABEL_GROUP_NOT_FOUND")
	}
	if got := problem.Arguments["groupID"]; got != "sales" {
		t.Fatalf("arguments[groupID] = %q", got)
	}
}
