package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

// idParam parses the {id} route parameter. A non-numeric id behaves like a
// record that does not exist.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// queryIntParam returns the named query parameter as an int, or the fallback
// when it is absent or malformed.
func queryIntParam(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return v
}

// requesterID extracts the authenticated owner id. The authenticator
// middleware guarantees it is present on every protected route.
func requesterID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, unauthenticatedResponse)
	}
	return userID, ok
}
