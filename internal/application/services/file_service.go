package services

import (
	"context"
	"encoding/base64"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"files-manager/internal/application/apperrors"
	"files-manager/internal/application/command"
	"files-manager/internal/application/interfaces"
	"files-manager/internal/application/mapper"
	"files-manager/internal/domain/entities"
	"files-manager/internal/domain/repositories"
)

type FileService struct {
	sessions repositories.SessionStore
	files    repositories.FileRepository
	blobs    repositories.BlobStore
}

func NewFileService(
	sessions repositories.SessionStore,
	files repositories.FileRepository,
	blobs repositories.BlobStore,
) interfaces.FileService {
	return &FileService{
		sessions: sessions,
		files:    files,
		blobs:    blobs,
	}
}

// Upload validates and persists a new file or folder for the token's
// owner. The blob write and the metadata insert are not transactional: a
// blob that lands on disk before a failed insert stays orphaned, and the
// failure propagates to the caller.
func (s *FileService) Upload(ctx context.Context, token string, uploadCommand *command.UploadFileCommand) (*command.UploadFileCommandResult, error) {
	ownerID, err := s.resolveOwner(ctx, token)
	if err != nil {
		return nil, err
	}

	if uploadCommand.Name == "" {
		return nil, apperrors.ErrMissingName
	}
	if !entities.ValidFileType(uploadCommand.Type) {
		return nil, apperrors.ErrMissingType
	}
	if uploadCommand.Data == "" && uploadCommand.Type != entities.FileTypeFolder {
		return nil, apperrors.ErrMissingData
	}

	parentID, err := s.resolveParent(ctx, uploadCommand.ParentID)
	if err != nil {
		return nil, err
	}

	var localPath string
	if uploadCommand.Type != entities.FileTypeFolder {
		content, err := base64.StdEncoding.DecodeString(uploadCommand.Data)
		if err != nil {
			return nil, apperrors.ErrMissingData
		}
		localPath, err = s.blobs.Store(content)
		if err != nil {
			return nil, err
		}
	}

	file := entities.NewFile(ownerID, uploadCommand.Name, uploadCommand.Type, uploadCommand.IsPublic, parentID, localPath)
	stored, err := s.files.Insert(ctx, file)
	if err != nil {
		return nil, err
	}

	return &command.UploadFileCommandResult{
		Result: mapper.NewFileResultFromEntity(stored),
	}, nil
}

func (s *FileService) resolveOwner(ctx context.Context, token string) (primitive.ObjectID, error) {
	if token == "" {
		return primitive.NilObjectID, apperrors.ErrUnauthorized
	}
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if userID == "" {
		return primitive.NilObjectID, apperrors.ErrUnauthorized
	}
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrUnauthorized
	}
	return ownerID, nil
}

// resolveParent maps ""/"0" to the root with no lookup at all; anything
// else must be the hex of an existing folder document.
func (s *FileService) resolveParent(ctx context.Context, parent string) (primitive.ObjectID, error) {
	if parent == "" || parent == "0" {
		return primitive.NilObjectID, nil
	}
	parentID, err := primitive.ObjectIDFromHex(parent)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrParentNotFound
	}
	parentFile, err := s.files.FindByID(ctx, parentID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if parentFile == nil || !parentFile.IsFolder() {
		return primitive.NilObjectID, apperrors.ErrParentNotFound
	}
	return parentID, nil
}
