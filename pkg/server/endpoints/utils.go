package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// pathID parses a numeric id path variable. The second return is false when
// the variable is missing or not an integer.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// creator resolves who to record in audit columns: the X-Keywhiz-Creator
// header if the caller sent one, the configured default otherwise.
func creator(r *http.Request, fallback string) string {
	if c := r.Header.Get("X-Keywhiz-Creator"); c != "" {
		return c
	}
	return fallback
}

// createRequest is the JSON body accepted by the identity create endpoints
type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (*createRequest, bool) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	if req.Name == "" {
		respondWithError(w, http.StatusUnprocessableEntity, "name is required")
		return nil, false
	}
	return &req, true
}
