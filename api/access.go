package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"

	"github.com/datasethub/dataset-access-service/artifacts"
	"github.com/datasethub/dataset-access-service/files"
)

//go:generate moq -rm -pkg api_test -out moq_api_test.go . Resolver AccessRecorder FileOpener

// Resolver is the access-service surface the handlers call into.
type Resolver interface {
	Latest(ctx context.Context, datasetID, callerID string) (*artifacts.Descriptor, error)
	ByVersion(ctx context.Context, datasetID, versionID, callerID string) (*artifacts.Descriptor, error)
	Instance(ctx context.Context, datasetID, versionID, instanceID, callerID string) (*artifacts.Descriptor, error)
}

// AccessRecorder accepts usage-accounting submissions. Submissions are
// fire-and-forget: the response to the caller never waits on them and
// never learns of their failure.
type AccessRecorder interface {
	Submit(userID, datasetID, versionID string) bool
}

// FileOpener streams the bytes behind a resolved file URL for the
// download route.
type FileOpener interface {
	Open(ctx context.Context, rawURL string) (*files.File, error)
}

// API holds the handlers serving dataset artifact descriptors and
// downloads.
type API struct {
	Resolver Resolver
	Recorder AccessRecorder
	Fetcher  FileOpener
}

// GetLatest serves the most recent enabled version of a dataset.
func (a *API) GetLatest(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	datasetID := mux.Vars(req)["datasetID"]
	callerID := callerIdentity(req)

	desc, err := a.Resolver.Latest(ctx, datasetID, callerID)
	if err != nil {
		handleError(ctx, "resolving latest version", w, err)
		return
	}

	a.recordAccess(ctx, callerID, desc)
	writeDescriptor(ctx, w, desc)
}

// GetVersion serves a named version of a dataset.
func (a *API) GetVersion(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	vars := mux.Vars(req)
	callerID := callerIdentity(req)

	desc, err := a.Resolver.ByVersion(ctx, vars["datasetID"], vars["version"], callerID)
	if err != nil {
		handleError(ctx, "resolving version", w, err)
		return
	}

	a.recordAccess(ctx, callerID, desc)
	writeDescriptor(ctx, w, desc)
}

// GetInstance serves a saved instance nested under a version.
func (a *API) GetInstance(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	vars := mux.Vars(req)
	callerID := callerIdentity(req)

	desc, err := a.Resolver.Instance(ctx, vars["datasetID"], vars["version"], vars["instanceID"], callerID)
	if err != nil {
		handleError(ctx, "resolving instance", w, err)
		return
	}

	a.recordAccess(ctx, callerID, desc)
	writeDescriptor(ctx, w, desc)
}

// DownloadVersion streams the primary file of a named version. The
// accounting submission happens once resolution succeeds, before any
// bytes move; the stream must never wait on the ledger.
func (a *API) DownloadVersion(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	vars := mux.Vars(req)
	callerID := callerIdentity(req)

	desc, err := a.Resolver.ByVersion(ctx, vars["datasetID"], vars["version"], callerID)
	if err != nil {
		handleError(ctx, "resolving version for download", w, err)
		return
	}

	primary := desc.PrimaryURL()
	if primary == "" {
		handleError(ctx, "version has no files", w, artifacts.ErrVersionNotFound)
		return
	}

	a.recordAccess(ctx, callerID, desc)

	file, err := a.Fetcher.Open(ctx, primary)
	if err != nil {
		handleError(ctx, fmt.Sprintf("opening file %s", primary), w, err)
		return
	}
	defer closeFile(ctx, file.Body)

	w.Header().Set("Content-Type", file.ContentType)
	if file.ContentLength >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(file.ContentLength, 10))
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Name))

	if _, err := io.Copy(w, file.Body); err != nil {
		// headers are gone; all we can do is log the broken stream
		log.Error(ctx, "failed to stream file content", err, log.Data{"url": primary})
	}
}

// anonymousCaller keys accounting for unauthenticated access to public
// datasets. The store requires a non-empty document identifier.
const anonymousCaller = "anonymous"

func (a *API) recordAccess(ctx context.Context, callerID string, desc *artifacts.Descriptor) {
	if callerID == "" {
		callerID = anonymousCaller
	}
	if !a.Recorder.Submit(callerID, desc.DatasetID, desc.VersionID) {
		log.Warn(ctx, "access accounting not queued", log.Data{
			"dataset_id": desc.DatasetID,
			"version_id": desc.VersionID,
		})
	}
}

func writeDescriptor(ctx context.Context, w http.ResponseWriter, desc *artifacts.Descriptor) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(desc); err != nil {
		log.Error(ctx, "failed to encode descriptor", err)
	}
}

func closeFile(ctx context.Context, body io.Closer) {
	if err := body.Close(); err != nil {
		log.Error(ctx, "error closing file stream", err)
	}
}
