package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned by the store when a requested document is absent.
var ErrNotFound = errors.New("document not found")

// Dataset visibility values. Older documents carry the boolean isPublic
// flag instead of the visibility field; both are honoured.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// DatasetDocument is the root record for a dataset.
// Firestore JSON looks like this:
//
//	{
//	    "visibility": "private",
//	    "accessUsers": ["u1", "u2"],
//	    "latestVersion": "1.2.0",   // legacy documents only
//	    "requestCount": 42
//	}
//
// Datasets are authored elsewhere; this service only reads them and
// increments requestCount.
type DatasetDocument struct {
	ID            string   `firestore:"-" json:"id"`
	Visibility    string   `firestore:"visibility" json:"visibility"`
	IsPublic      bool     `firestore:"isPublic" json:"isPublic"`
	AccessUsers   []string `firestore:"accessUsers" json:"accessUsers"`
	LatestVersion string   `firestore:"latestVersion" json:"latestVersion,omitempty"`
	RequestCount  int64    `firestore:"requestCount" json:"requestCount"`
}

// Public reports whether the dataset is visible to any caller.
func (d *DatasetDocument) Public() bool {
	return d.Visibility == VisibilityPublic || d.IsPublic
}

// FileDescriptor is the current-generation file entry on a version or
// instance document.
type FileDescriptor struct {
	FileURL string `firestore:"fileUrl" json:"fileUrl"`
	Name    string `firestore:"name,omitempty" json:"name,omitempty"`
	Size    int64  `firestore:"size,omitempty" json:"size,omitempty"`
}

// VersionDocument is a published snapshot of a dataset's files.
//
// Three generations of the files shape coexist in the collection:
// files (objects), fileUrls (strings) and a single fileUrl scalar.
// Consumers normalize these once at the resolver boundary rather than
// branching on generation throughout.
type VersionDocument struct {
	ID           string                 `firestore:"-" json:"id"`
	PublishedOn  time.Time              `firestore:"publishedOn" json:"publishedOn"`
	IsDisabled   bool                   `firestore:"isDisabled" json:"isDisabled"`
	Files        []FileDescriptor       `firestore:"files" json:"files,omitempty"`
	FileURLs     []string               `firestore:"fileUrls" json:"fileUrls,omitempty"`
	FileURL      string                 `firestore:"fileUrl" json:"fileUrl,omitempty"`
	RequestCount int64                  `firestore:"requestCount" json:"requestCount"`
	Raw          map[string]interface{} `firestore:"-" json:"-"`
}

// InstanceDocument is a named saved snapshot nested under a version.
// Instances inherit the parent dataset's access policy and carry no
// disabled flag of their own.
type InstanceDocument struct {
	ID       string                 `firestore:"-" json:"id"`
	SavedAt  time.Time              `firestore:"savedAt" json:"savedAt"`
	Files    []FileDescriptor       `firestore:"files" json:"files,omitempty"`
	FileURLs []string               `firestore:"fileUrls" json:"fileUrls,omitempty"`
	FileURL  string                 `firestore:"fileUrl" json:"fileUrl,omitempty"`
	Raw      map[string]interface{} `firestore:"-" json:"-"`
}

// UserRequestDocument records every access a single user has made to a
// single dataset, keyed by sanitized version key. The versions map only
// ever grows; timestamps are appended inside a transaction.
type UserRequestDocument struct {
	Versions    map[string][]time.Time `firestore:"versions" json:"versions"`
	LastUpdated time.Time              `firestore:"lastUpdated" json:"lastUpdated"`
}

// VersionRequestorDocument aggregates one user's accesses to one version.
type VersionRequestorDocument struct {
	RequestedCount int64       `firestore:"requestedCount" json:"requestedCount"`
	RequestedTime  []time.Time `firestore:"requestedTime" json:"requestedTime"`
}
