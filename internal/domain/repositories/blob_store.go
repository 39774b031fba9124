package repositories

// BlobStore persists raw payload bytes outside the metadata record and
// hands back a location for the File document to reference.
type BlobStore interface {
	// Store writes content under a fresh unique name and returns its path.
	Store(content []byte) (string, error)
}
