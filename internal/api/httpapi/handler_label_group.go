package httpapi

import (
	"errors"
	"net/http"

	apperrors "github.com/louisbranch/referencehub/internal/errors"
	"github.com/louisbranch/referencehub/internal/storage"
)

type labelGroupListResponse struct {
	LabelGroups []storage.LabelGroup `json:"labelGroups"`
}

func (h *handler) createLabelGroup(w http.ResponseWriter, r *http.Request) {
	var group storage.LabelGroup
	if err := decodeJSON(r, &group); err != nil {
		writeProblem(w, err)
		return
	}
	if group.ID == "" {
		writeProblem(w, apperrors.NewInvalidBody())
		return
	}
	if err := h.labelGroups.CreateLabelGroup(r.Context(), group); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			writeProblem(w, apperrors.NewDuplicate(apperrors.SubjectLabelGroup))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (h *handler) listLabelGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.labelGroups.ListLabelGroups(r.Context())
	if err != nil {
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, labelGroupListResponse{LabelGroups: groups})
}

func (h *handler) deleteLabelGroup(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if err := h.labelGroups.DeleteLabelGroup(r.Context(), groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NewNotFound(apperrors.SubjectLabelGroup, "groupID", groupID))
			return
		}
		writeProblem(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
