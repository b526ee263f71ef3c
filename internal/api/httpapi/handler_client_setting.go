package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/louisbranch/referencehub/internal/errors"
	"github.com/louisbranch/referencehub/internal/storage"
)

// parseClientID validates the clientID path parameter. Anything non-integer
// is rejected before touching the store.
func parseClientID(r *http.Request) (int64, error) {
	clientID, err := strconv.ParseInt(r.PathValue("clientID"), 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidClientID()
	}
	return clientID, nil
}

func (h *handler) createClientSetting(w http.ResponseWriter, r *http.Request) {
	var setting storage.ClientSetting
	if err := decodeJSON(r, &setting); err != nil {
		writeProblem(w, err)
		return
	}
	if setting.Group == "" {
		writeProblem(w, apperrors.NewInvalidBody())
		return
	}
	if err := h.clients.CreateClientSetting(r.Context(), setting); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			writeProblem(w, apperrors.NewDuplicate(apperrors.SubjectClient))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, setting)
}

func (h *handler) getClientSetting(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseClientID(r)
	if err != nil {
		writeProblem(w, err)
		return
	}
	setting, err := h.clients.GetClientSetting(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NotFoundClient(clientID))
			return
		}
		writeProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *handler) deleteClientSetting(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseClientID(r)
	if err != nil {
		writeProblem(w, err)
		return
	}
	if err := h.clients.DeleteClientSetting(r.Context(), clientID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeProblem(w, apperrors.NotFoundClient(clientID))
			return
		}
		writeProblem(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
