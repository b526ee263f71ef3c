// Package httpapi exposes the reference content API over HTTP with JSON
// bodies and RFC 7807-style problem errors.
package httpapi

import (
	"net/http"

	"github.com/louisbranch/referencehub/internal/resolution"
	"github.com/louisbranch/referencehub/internal/storage"
)

// Stores bundles the persistence contracts the API depends on.
type Stores interface {
	storage.ReferenceStore
	storage.LabelGroupStore
	storage.OverrideStore
	storage.ClientSettingStore
	storage.SchemaStore
}

type handler struct {
	references  storage.ReferenceStore
	labelGroups storage.LabelGroupStore
	overrides   storage.OverrideStore
	clients     storage.ClientSettingStore
	schemas     storage.SchemaStore
	engine      *resolution.Engine
}

// NewHandler builds the HTTP handler for the reference content API.
func NewHandler(stores Stores) http.Handler {
	h := &handler{
		references:  stores,
		labelGroups: stores,
		overrides:   stores,
		clients:     stores,
		schemas:     stores,
		engine:      resolution.NewEngine(stores, stores, stores),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.health)

	mux.HandleFunc("POST /references", h.createReference)
	mux.HandleFunc("GET /references", h.listReferences)
	mux.HandleFunc("GET /references/{referenceID}", h.getReference)
	mux.HandleFunc("PUT /references/{referenceID}", h.updateReference)
	mux.HandleFunc("DELETE /references/{referenceID}", h.deleteReference)

	mux.HandleFunc("POST /references/{referenceID}/label-groups", h.createOverride)
	mux.HandleFunc("GET /references/{referenceID}/label-groups", h.listOverrides)
	mux.HandleFunc("PUT /references/{referenceID}/label-groups/{groupID}", h.updateOverride)
	mux.HandleFunc("DELETE /references/{referenceID}/label-groups/{groupID}", h.deleteOverride)

	mux.HandleFunc("POST /label-groups", h.createLabelGroup)
	mux.HandleFunc("GET /label-groups", h.listLabelGroups)
	mux.HandleFunc("DELETE /label-groups/{groupID}", h.deleteLabelGroup)

	mux.HandleFunc("POST /client-settings", h.createClientSetting)
	mux.HandleFunc("GET /client-settings/{clientID}", h.getClientSetting)
	mux.HandleFunc("DELETE /client-settings/{clientID}", h.deleteClientSetting)

	mux.HandleFunc("GET /clients/{clientID}/providers/{provider}/schemas/{name}/types/{schemaType}", h.getSchema)
	mux.HandleFunc("PUT /clients/{clientID}/providers/{provider}/schemas/{name}/types/{schemaType}", h.putSchema)

	return mux
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
