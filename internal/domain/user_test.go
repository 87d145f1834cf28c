package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	u := NewUser("123456789012", "us-east-1", "default", "user1", "u@example.com", "QUICKSIGHT", "READER")

	assert.Equal(t, "arn:aws:quicksight:us-east-1:123456789012:user/default/user1", u.ARN)
	assert.False(t, u.Active)
	assert.Len(t, u.PrincipalID, 10)
}

func TestGroupResponse_PrincipalIDIsAccount(t *testing.T) {
	g := NewGroup("us-east-1", "admins", "", "123456789012", "default")
	assert.Equal(t, "123456789012", g.Response().PrincipalID)
	assert.Equal(t, "default", g.Response().Namespace)
}
