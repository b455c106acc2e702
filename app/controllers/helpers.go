package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shramana263/neighbourlink/app/repositories"
	"github.com/shramana263/neighbourlink/app/services"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError maps the service and repository sentinels onto HTTP
// statuses; anything unrecognized is a generic failure.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials):
		sendError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, services.ErrNotOwner):
		sendError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, services.ErrResponderNotFound):
		sendError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrAlreadyResponded),
		errors.Is(err, services.ErrSelfResponse),
		errors.Is(err, services.ErrAlreadyRegistered),
		errors.Is(err, repositories.ErrDuplicate):
		sendError(w, err.Error(), http.StatusConflict)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pageParams(r *http.Request) (page, perPage int) {
	page = 1
	perPage = 10
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if pp := r.URL.Query().Get("per_page"); pp != "" {
		if n, err := strconv.Atoi(pp); err == nil && n > 0 {
			perPage = n
		}
	}
	return page, perPage
}
