package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"showcase/internal/domain"
	"showcase/internal/httputil"
)

// respondDomainError maps a service error onto the wire. Each domain
// error kind has exactly one status so front-ends can key stable
// messaging off it; anything unrecognized is a 500 and gets logged with
// its cause.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, r *http.Request, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		httputil.RespondError(w, http.StatusUnauthorized, "sign in required")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "you don't have permission")
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrRestoreExpired):
		httputil.RespondError(w, http.StatusGone, "this project can no longer be restored")
	case errors.Is(err, domain.ErrStorage):
		logger.Error("storage failure",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		httputil.RespondError(w, http.StatusServiceUnavailable, "temporarily unavailable, retry later")
	default:
		logger.Error("unexpected error",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
