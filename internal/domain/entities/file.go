package entities

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FileTypeFolder = "folder"
	FileTypeFile   = "file"
	FileTypeImage  = "image"
)

// File is a single node in the upload hierarchy. A zero ParentID means the
// node sits at the root. LocalPath points at the blob on disk and never
// leaves the store layer; folders have no LocalPath.
type File struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"userId"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	IsPublic  bool               `bson:"isPublic"`
	ParentID  primitive.ObjectID `bson:"parentId,omitempty"`
	LocalPath string             `bson:"localPath,omitempty"`
}

func NewFile(ownerID primitive.ObjectID, name, fileType string, isPublic bool, parentID primitive.ObjectID, localPath string) *File {
	return &File{
		OwnerID:   ownerID,
		Name:      name,
		Type:      fileType,
		IsPublic:  isPublic,
		ParentID:  parentID,
		LocalPath: localPath,
	}
}

func ValidFileType(t string) bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

func (f *File) Validate() error {
	if f.Name == "" {
		return errors.New("name must not be empty")
	}
	if !ValidFileType(f.Type) {
		return errors.New("type must be folder, file or image")
	}
	if f.OwnerID.IsZero() {
		return errors.New("owner must be set")
	}
	if f.Type != FileTypeFolder && f.LocalPath == "" {
		return errors.New("non-folder must reference stored content")
	}
	return nil
}

// IsFolder reports whether the node can be used as a parent.
func (f *File) IsFolder() bool {
	return f.Type == FileTypeFolder
}
