package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/datasethub/dataset-access-service/artifacts"
	"github.com/datasethub/dataset-access-service/files"
)

type jsonError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type jsonErrors struct {
	Error []jsonError `json:"errors"`
}

// handleError maps the resolution error taxonomy onto HTTP responses.
// An access denial and an absent dataset share one response shape so a
// denied caller cannot probe for existence. Anything unrecognised is a
// server-side failure.
func handleError(ctx context.Context, event string, w http.ResponseWriter, err error) {
	log.Error(ctx, event, err)

	switch {
	case errors.Is(err, artifacts.ErrDatasetAccess):
		writeError(w, buildErrors(err, "NotFound"), http.StatusNotFound)
	case errors.Is(err, artifacts.ErrVersionNotFound),
		errors.Is(err, artifacts.ErrInstanceNotFound):
		writeError(w, buildErrors(err, "NotFound"), http.StatusNotFound)
	case errors.Is(err, artifacts.ErrNoActiveVersion):
		writeError(w, buildErrors(err, "NoActiveVersion"), http.StatusNotFound)
	case errors.Is(err, artifacts.ErrVersionDisabled):
		writeError(w, buildErrors(err, "VersionDisabled"), http.StatusGone)
	case errors.Is(err, files.ErrFileUnavailable):
		writeError(w, buildErrors(err, "FileUnavailable"), http.StatusBadGateway)
	default:
		writeError(w, buildErrors(err, "InternalError"), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, errs jsonErrors, httpCode int) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	w.WriteHeader(httpCode)
	encoder.Encode(&errs) // nolint
}

func buildErrors(err error, code string) jsonErrors {
	return jsonErrors{Error: []jsonError{{Description: err.Error(), Code: code}}}
}
