package domain

import (
	"regexp"
	"time"
)

// Defaults applied when a folder is created without an explicit type or
// sharing model.
const (
	FolderTypeShared    = "SHARED"
	SharingModelAccount = "ACCOUNT"
)

var folderIDPattern = regexp.MustCompile(`^[\w\-]+$`)

// ValidateFolderID checks the structural constraint on folder ids. Both
// create and describe run it before touching the collection.
func ValidateFolderID(id string) error {
	if !folderIDPattern.MatchString(id) {
		return ErrValidation(
			`1 validation error detected: Value '%s' at 'folderId' failed to satisfy constraint: Member must satisfy regular expression pattern: [\w\-]+`,
			id,
		)
	}
	return nil
}

// Folder is a shared container for analytics assets, carrying a permission
// list that names user or group principals.
type Folder struct {
	ARN             string
	FolderID        string
	Name            string
	FolderType      string
	ParentFolderARN string
	SharingModel    string
	Permissions     []Permission
	Tags            []Tag
	CreatedTime     time.Time
	LastUpdatedTime time.Time
	AccountID       string
	Region          string
}

// FolderSpec carries the caller-supplied fields for a new folder.
type FolderSpec struct {
	FolderID        string
	Name            string
	FolderType      string
	ParentFolderARN string
	SharingModel    string
	Permissions     []Permission
	Tags            []Tag
}

// NewFolder creates a folder, applying the SHARED/ACCOUNT defaults.
// Permissions must already be validated. Both timestamps are assigned once
// here; LastUpdatedTime is not refreshed by later mutations.
func NewFolder(accountID, region string, spec FolderSpec) *Folder {
	folderType := spec.FolderType
	if folderType == "" {
		folderType = FolderTypeShared
	}
	sharingModel := spec.SharingModel
	if sharingModel == "" {
		sharingModel = SharingModelAccount
	}
	now := time.Now().UTC()
	return &Folder{
		ARN:             ResourceARN(region, accountID, "folder/"+spec.FolderID),
		FolderID:        spec.FolderID,
		Name:            spec.Name,
		FolderType:      folderType,
		ParentFolderARN: spec.ParentFolderARN,
		SharingModel:    sharingModel,
		Permissions:     spec.Permissions,
		Tags:            spec.Tags,
		CreatedTime:     now,
		LastUpdatedTime: now,
		AccountID:       accountID,
		Region:          region,
	}
}

// FolderPath is not modeled; folders always report an empty path.
func (f *Folder) FolderPath() []string {
	return []string{}
}

// PermissionList returns the folder's permissions, never nil, so the wire
// rendering is an empty array rather than null.
func (f *Folder) PermissionList() []Permission {
	if f.Permissions == nil {
		return []Permission{}
	}
	return f.Permissions
}

// FolderResponse is the wire projection of a Folder.
type FolderResponse struct {
	FolderID        string   `json:"FolderId"`
	Arn             string   `json:"Arn"`
	Name            string   `json:"Name"`
	FolderType      string   `json:"FolderType"`
	FolderPath      []string `json:"FolderPath"`
	CreatedTime     string   `json:"CreatedTime"`
	LastUpdatedTime string   `json:"LastUpdatedTime"`
	SharingModel    string   `json:"SharingModel"`
}

// Response renders the folder for the wire.
func (f *Folder) Response() FolderResponse {
	return FolderResponse{
		FolderID:        f.FolderID,
		Arn:             f.ARN,
		Name:            f.Name,
		FolderType:      f.FolderType,
		FolderPath:      f.FolderPath(),
		CreatedTime:     f.CreatedTime.Format(time.RFC3339Nano),
		LastUpdatedTime: f.LastUpdatedTime.Format(time.RFC3339Nano),
		SharingModel:    f.SharingModel,
	}
}
