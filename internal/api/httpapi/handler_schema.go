package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/louisbranch/referencehub/internal/errors"
	"github.com/louisbranch/referencehub/internal/storage"
)

type schemaListResponse struct {
	Schemas []storage.SchemaDocument `json:"schemas"`
}

func (h *handler) getSchema(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	doc, err := h.schemas.GetSchema(r.Context(), r.PathValue("clientID"), r.PathValue("provider"), name, r.PathValue("schemaType"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NewNotFound(apperrors.SubjectSchema, "name", name))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schemaListResponse{Schemas: []storage.SchemaDocument{doc}})
}

func (h *handler) putSchema(w http.ResponseWriter, r *http.Request) {
	var doc storage.SchemaDocument
	if err := decodeJSON(r, &doc); err != nil {
		writeProblem(w, err)
		return
	}
	if len(doc.Schema) == 0 {
		writeProblem(w, apperrors.NewInvalidBody())
		return
	}
	doc.ClientID = r.PathValue("clientID")
	doc.Provider = r.PathValue("provider")
	doc.Name = r.PathValue("name")
	doc.Type = r.PathValue("schemaType")
	if doc.Subject == "" {
		doc.Subject = fmt.Sprintf("%s-%s-%s", doc.Provider, doc.Name, doc.Type)
	}
	if err := h.schemas.PutSchema(r.Context(), doc); err != nil {
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}
