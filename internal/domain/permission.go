package domain

import (
	"slices"
	"strings"
)

// ResourceType tags the resource family a permission set applies to.
// Folders are the only resource with modeled permission bundles so far.
type ResourceType string

// ResourceTypeFolder is the folder resource family.
const ResourceTypeFolder ResourceType = "FOLDER"

// The three valid action bundles for folder permissions. A supplied action
// list must be set-equal to exactly one of them; no subset or superset
// matches.
var (
	FolderViewerActions = []string{
		"quicksight:DescribeFolder",
	}
	FolderAuthorActions = []string{
		"quicksight:CreateFolder",
		"quicksight:DescribeFolder",
		"quicksight:CreateFolderMembership",
		"quicksight:DeleteFolderMembership",
		"quicksight:DescribeFolderPermissions",
	}
	FolderOwnerActions = []string{
		"quicksight:CreateFolder",
		"quicksight:DescribeFolder",
		"quicksight:UpdateFolder",
		"quicksight:DeleteFolder",
		"quicksight:CreateFolderMembership",
		"quicksight:DeleteFolderMembership",
		"quicksight:DescribeFolderPermissions",
		"quicksight:UpdateFolderPermissions",
	}
)

// Permission grants a list of actions to a principal (user or group ARN).
type Permission struct {
	Principal string   `json:"Principal"`
	Actions   []string `json:"Actions"`
}

// ValidateActions checks the action list against the fixed bundles for the
// resource type. Comparison is order-independent; the error message quotes
// the supplied actions and enumerates all valid bundles.
func (p Permission) ValidateActions(resource ResourceType) error {
	if resource != ResourceTypeFolder {
		return ErrInvalidParameterValue("Unknown permission set for resource type %s", resource)
	}
	supplied := slices.Clone(p.Actions)
	slices.Sort(supplied)
	for _, bundle := range [][]string{FolderViewerActions, FolderAuthorActions, FolderOwnerActions} {
		sorted := slices.Clone(bundle)
		slices.Sort(sorted)
		if slices.Equal(supplied, sorted) {
			return nil
		}
	}
	return ErrInvalidParameterValue(
		"ResourcePermission list contains unsupported permission sets %s for this resource. Valid sets : %s or %s or %s",
		quoteActionList(p.Actions),
		quoteActionList(FolderViewerActions),
		quoteActionList(FolderAuthorActions),
		quoteActionList(FolderOwnerActions),
	)
}

// quoteActionList renders an action list in the bracketed, single-quoted
// form used by the service's error messages: ['a', 'b'].
func quoteActionList(actions []string) string {
	quoted := make([]string, len(actions))
	for i, a := range actions {
		quoted[i] = "'" + a + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
