package artifacts

import (
	"github.com/datasethub/dataset-access-service/storage"
)

// File is the canonical file entry of a resolved artifact descriptor.
type File struct {
	URL  string `json:"fileUrl"`
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// NormalizeFiles converts the three coexisting file-schema generations
// into one ordered sequence of canonical file entries:
//
//	files:    []{fileUrl, name, size}   (current)
//	fileUrls: []string                  (legacy)
//	fileUrl:  string                    (oldest)
//
// When a record carries more than one generation, the newest wins.
// Order within a generation is preserved, so the primary file of a
// descriptor is always its first element.
func NormalizeFiles(files []storage.FileDescriptor, fileURLs []string, fileURL string) []File {
	switch {
	case len(files) > 0:
		out := make([]File, 0, len(files))
		for _, f := range files {
			out = append(out, File{URL: f.FileURL, Name: f.Name, Size: f.Size})
		}
		return out

	case len(fileURLs) > 0:
		out := make([]File, 0, len(fileURLs))
		for _, u := range fileURLs {
			out = append(out, File{URL: u})
		}
		return out

	case fileURL != "":
		return []File{{URL: fileURL}}
	}

	return nil
}
