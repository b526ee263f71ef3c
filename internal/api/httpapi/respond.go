package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	apperrors "github.com/louisbranch/referencehub/internal/errors"
	"github.com/louisbranch/referencehub/internal/resolution"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	encoded, err := json.Marshal(body)
	if err != nil {
		log.Printf("encode response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(encoded)
}

func writeProblem(w http.ResponseWriter, err error) {
	problem := apperrors.AsProblem(err)
	if problem.Status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	encoded, marshalErr := json.Marshal(problem)
	if marshalErr != nil {
		log.Printf("encode problem: %v", marshalErr)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(problem.Status)
	_, _ = w.Write(encoded)
}

// decodeJSON decodes a request body into target. Empty or malformed payloads
// surface as invalid-body errors.
func decodeJSON(r *http.Request, target any) error {
	if r.Body == nil {
		return apperrors.NewInvalidBody()
	}
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return apperrors.NewInvalidBody()
	}
	return nil
}

// parseSelector extracts the optional group/client/lang query selectors. A
// non-integer client value is rejected before any lookup happens.
func parseSelector(r *http.Request) (resolution.Selector, error) {
	query := r.URL.Query()
	sel := resolution.Selector{
		Group:    query.Get("group"),
		Language: query.Get("lang"),
	}
	if client := query.Get("client"); client != "" {
		clientID, err := strconv.ParseInt(client, 10, 64)
		if err != nil {
			return resolution.Selector{}, apperrors.NewInvalidClientID()
		}
		sel.ClientID = &clientID
	}
	return sel, nil
}
