package command

import "files-manager/internal/application/common"

// UploadFileCommand is the POST /files request body. ParentID is the hex
// of an existing folder, or ""/"0" for the root. Data is the base64
// payload, required for every type except folder.
type UploadFileCommand struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

type UploadFileCommandResult struct {
	Result *common.FileResult
}
