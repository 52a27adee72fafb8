package handler

import (
	"net/http"
	"strconv"
)

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Echo returns the query parameters as a JSON object. With fail=<status> it
// fails with that status instead, which lets the failure path be observed live.
func Echo(w http.ResponseWriter, r *http.Request) error {
	if v := r.URL.Query().Get("fail"); v != "" {
		status, err := strconv.Atoi(v)
		if err != nil || status < 400 || status > 599 {
			return NewStatusError(http.StatusBadRequest, "fail must be a status between 400 and 599")
		}
		return NewStatusError(status, http.StatusText(status))
	}

	return writeJSON(w, http.StatusOK, queryParams(r))
}
