package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"qsmock/internal/domain"
)

func TestWireError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound("Group g not found"), http.StatusNotFound, "ResourceNotFoundException"},
		{domain.ErrInvalidParameterValue("No folder name found"), http.StatusBadRequest, "InvalidParameterValueException"},
		{domain.ErrValidation("bad input"), http.StatusBadRequest, "ValidationException"},
		{errors.New("boom"), http.StatusInternalServerError, "InternalFailure"},
	}
	for _, tt := range tests {
		status, code := wireError(tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.code, code)
	}
}

func TestRegionFromRequest(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "us-east-1", regionFromRequest(req, "us-east-1"))

	req.Header.Set("Authorization",
		"AWS4-HMAC-SHA256 Credential=AKIAEXAMPLE/20260828/ap-southeast-2/quicksight/aws4_request")
	assert.Equal(t, "ap-southeast-2", regionFromRequest(req, "us-east-1"))

	// A scope for a different service does not override the default.
	req.Header.Set("Authorization",
		"AWS4-HMAC-SHA256 Credential=AKIAEXAMPLE/20260828/eu-west-1/s3/aws4_request")
	assert.Equal(t, "us-east-1", regionFromRequest(req, "us-east-1"))
}
