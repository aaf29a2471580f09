package handler

import (
	"net/http"
	"time"

	"showcase/internal/domain/models"
	"showcase/internal/httputil"
)

// requireActor extracts the authenticated actor or writes a 401. Returns
// ok=false when the response has already been written.
func requireActor(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor := httputil.GetActor(r)
	if actor.ID == "" {
		httputil.RespondError(w, http.StatusUnauthorized, "sign in required")
		return models.Actor{}, false
	}
	return actor, true
}

// wholeSeconds reports a duration as whole seconds for the wire,
// rounding up so a window with any time left never reads as zero.
func wholeSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	secs := int64(d / time.Second)
	if d%time.Second > 0 {
		secs++
	}
	return secs
}
