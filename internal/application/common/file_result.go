package common

// FileResult is the trimmed, externally visible form of a stored File.
// The blob path deliberately stays internal. ParentID is "0" for root
// nodes so clients never see a zero ObjectID.
type FileResult struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}
