package mapper

import (
	"files-manager/internal/application/common"
	"files-manager/internal/domain/entities"
)

func NewFileResultFromEntity(file *entities.File) *common.FileResult {
	parentID := "0"
	if !file.ParentID.IsZero() {
		parentID = file.ParentID.Hex()
	}
	return &common.FileResult{
		ID:       file.ID.Hex(),
		UserID:   file.OwnerID.Hex(),
		Name:     file.Name,
		Type:     file.Type,
		IsPublic: file.IsPublic,
		ParentID: parentID,
	}
}
