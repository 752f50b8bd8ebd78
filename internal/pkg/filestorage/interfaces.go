package filestorage

import "mime/multipart"

// FileStorage defines the operations the note lifecycle needs from the
// upload store.
type FileStorage interface {
	// Save validates and stores an uploaded file, returning its public URL path.
	Save(fileHeader *multipart.FileHeader) (string, error)

	// Delete removes a stored file by its URL path. Missing files are not an error.
	Delete(fileURL string) error
}
