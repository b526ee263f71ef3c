package httpapi

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/louisbranch/referencehub/internal/errors"
	"github.com/louisbranch/referencehub/internal/storage"
)

type overrideListResponse struct {
	References []storage.ReferenceOverride `json:"references"`
}

// requireReference enforces the reference-before-group existence order shared
// by every override route.
func (h *handler) requireReference(ctx context.Context, referenceID string) error {
	if _, err := h.references.GetReference(ctx, referenceID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NewNotFound(apperrors.SubjectReference, "referenceID", referenceID)
		}
		return err
	}
	return nil
}

func (h *handler) createOverride(w http.ResponseWriter, r *http.Request) {
	referenceID := r.PathValue("referenceID")
	var override storage.ReferenceOverride
	if err := decodeJSON(r, &override); err != nil {
		writeProblem(w, err)
		return
	}
	if override.Group == "" {
		writeProblem(w, apperrors.NewInvalidBody())
		return
	}
	if err := h.requireReference(r.Context(), referenceID); err != nil {
		writeProblem(w, err)
		return
	}
	override.ReferenceID = referenceID
	if err := h.overrides.CreateOverride(r.Context(), override); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			writeProblem(w, apperrors.NewDuplicate(apperrors.SubjectReference))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, override)
}

func (h *handler) listOverrides(w http.ResponseWriter, r *http.Request) {
	referenceID := r.PathValue("referenceID")
	if err := h.requireReference(r.Context(), referenceID); err != nil {
		writeProblem(w, err)
		return
	}
	overrides, err := h.overrides.ListOverrides(r.Context(), referenceID)
	if err != nil {
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overrideListResponse{References: overrides})
}

func (h *handler) updateOverride(w http.ResponseWriter, r *http.Request) {
	referenceID := r.PathValue("referenceID")
	groupID := r.PathValue("groupID")
	var payload storage.ReferenceOverride
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, err)
		return
	}
	if err := h.requireReference(r.Context(), referenceID); err != nil {
		writeProblem(w, err)
		return
	}
	payload.ReferenceID = referenceID
	payload.Group = groupID
	if err := h.overrides.ReplaceOverride(r.Context(), payload); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NewNotFound(apperrors.SubjectLabelGroup, "groupID", groupID))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *handler) deleteOverride(w http.ResponseWriter, r *http.Request) {
	referenceID := r.PathValue("referenceID")
	groupID := r.PathValue("groupID")
	if err := h.requireReference(r.Context(), referenceID); err != nil {
		writeProblem(w, err)
		return
	}
	if err := h.overrides.DeleteOverride(r.Context(), referenceID, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NewNotFound(apperrors.SubjectLabelGroup, "groupID", groupID))
			return
		}
		writeProblem(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
