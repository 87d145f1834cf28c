package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFolderID(t *testing.T) {
	assert.NoError(t, ValidateFolderID("my-folder_01"))
	assert.NoError(t, ValidateFolderID("F"))

	err := ValidateFolderID("invalid folder id")
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t,
		`1 validation error detected: Value 'invalid folder id' at 'folderId' failed to satisfy constraint: Member must satisfy regular expression pattern: [\w\-]+`,
		err.Error())

	assert.Error(t, ValidateFolderID(""))
	assert.Error(t, ValidateFolderID("slash/id"))
}

func TestNewFolder_Defaults(t *testing.T) {
	f := NewFolder("123456789012", "us-east-1", FolderSpec{FolderID: "f1", Name: "Folder One"})

	assert.Equal(t, "arn:aws:quicksight:us-east-1:123456789012:folder/f1", f.ARN)
	assert.Equal(t, FolderTypeShared, f.FolderType)
	assert.Equal(t, SharingModelAccount, f.SharingModel)
	assert.Equal(t, f.CreatedTime, f.LastUpdatedTime)
}

func TestNewFolder_ExplicitTypeAndModel(t *testing.T) {
	f := NewFolder("123456789012", "us-east-1", FolderSpec{
		FolderID:     "f1",
		Name:         "Folder One",
		FolderType:   "RESTRICTED",
		SharingModel: "NAMESPACE",
	})

	assert.Equal(t, "RESTRICTED", f.FolderType)
	assert.Equal(t, "NAMESPACE", f.SharingModel)
}

func TestFolder_EmptyCollections(t *testing.T) {
	f := NewFolder("123456789012", "us-east-1", FolderSpec{FolderID: "f1", Name: "n"})

	// Both render as empty arrays on the wire, never null.
	assert.NotNil(t, f.FolderPath())
	assert.Empty(t, f.FolderPath())
	assert.NotNil(t, f.PermissionList())
	assert.Empty(t, f.PermissionList())
}
