package httpapi

import (
	"errors"
	"net/http"

	apperrors "github.com/louisbranch/referencehub/internal/errors"
	"github.com/louisbranch/referencehub/internal/resolution"
	"github.com/louisbranch/referencehub/internal/storage"
)

// defaultGroup is assigned to references created without an explicit group.
const defaultGroup = "default"

type referenceListResponse struct {
	References []storage.Reference `json:"references"`
}

type localizedReferenceListResponse struct {
	References []resolution.LocalizedReference `json:"references"`
}

func (h *handler) createReference(w http.ResponseWriter, r *http.Request) {
	var ref storage.Reference
	if err := decodeJSON(r, &ref); err != nil {
		writeProblem(w, err)
		return
	}
	if ref.ReferenceID == "" {
		writeProblem(w, apperrors.NewInvalidBody())
		return
	}
	if ref.Group == "" {
		ref.Group = defaultGroup
	}
	if err := h.references.CreateReference(r.Context(), ref); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			writeProblem(w, apperrors.NewDuplicate(apperrors.SubjectReference))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ref)
}

func (h *handler) listReferences(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelector(r)
	if err != nil {
		writeProblem(w, err)
		return
	}
	refs, err := h.engine.ResolveAll(r.Context(), sel)
	if err != nil {
		writeProblem(w, err)
		return
	}
	if sel.Language != "" {
		localized := make([]resolution.LocalizedReference, 0, len(refs))
		for _, ref := range refs {
			localized = append(localized, resolution.Localize(ref, sel.Language))
		}
		writeJSON(w, http.StatusOK, localizedReferenceListResponse{References: localized})
		return
	}
	writeJSON(w, http.StatusOK, referenceListResponse{References: refs})
}

func (h *handler) getReference(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelector(r)
	if err != nil {
		writeProblem(w, err)
		return
	}
	ref, err := h.engine.Resolve(r.Context(), r.PathValue("referenceID"), sel)
	if err != nil {
		writeProblem(w, err)
		return
	}
	if sel.Language != "" {
		writeJSON(w, http.StatusOK, resolution.Localize(ref, sel.Language))
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

func (h *handler) updateReference(w http.ResponseWriter, r *http.Request) {
	var payload storage.Reference
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, err)
		return
	}
	// Full-document replace: the stored record becomes exactly the payload
	// fields under the path identity. Absent fields drop out.
	payload.ReferenceID = r.PathValue("referenceID")
	if err := h.references.ReplaceReference(r.Context(), payload); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NewNotFound(apperrors.SubjectReference, "referenceID", payload.ReferenceID))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *handler) deleteReference(w http.ResponseWriter, r *http.Request) {
	referenceID := r.PathValue("referenceID")
	if err := h.references.DeleteReference(r.Context(), referenceID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NewNotFound(apperrors.SubjectReference, "referenceID", referenceID))
			return
		}
		writeProblem(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
