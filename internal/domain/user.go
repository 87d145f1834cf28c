package domain

import (
	"strings"

	"github.com/google/uuid"
)

// User is an identity registered in an account namespace.
type User struct {
	ARN          string
	Email        string
	IdentityType string
	UserName     string
	Role         string
	Active       bool
	PrincipalID  string
	AccountID    string
	Namespace    string
	Region       string
}

// NewUser creates a user with a generated principal id.
// Users start inactive, matching the reference behavior.
func NewUser(accountID, region, namespace, userName, email, identityType, role string) *User {
	return &User{
		ARN:          ResourceARN(region, accountID, "user/default/"+userName),
		Email:        email,
		IdentityType: identityType,
		UserName:     userName,
		Role:         role,
		Active:       false,
		PrincipalID:  newPrincipalID(),
		AccountID:    accountID,
		Namespace:    namespace,
		Region:       region,
	}
}

// newPrincipalID generates the 10-hex-character principal id the service
// attaches to registered users.
func newPrincipalID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// UserResponse is the wire projection of a User.
type UserResponse struct {
	Arn          string `json:"Arn"`
	Email        string `json:"Email"`
	IdentityType string `json:"IdentityType"`
	Role         string `json:"Role"`
	UserName     string `json:"UserName"`
	Active       bool   `json:"Active"`
	PrincipalID  string `json:"PrincipalId"`
}

// Response renders the user for the wire.
func (u *User) Response() UserResponse {
	return UserResponse{
		Arn:          u.ARN,
		Email:        u.Email,
		IdentityType: u.IdentityType,
		Role:         u.Role,
		UserName:     u.UserName,
		Active:       u.Active,
		PrincipalID:  u.PrincipalID,
	}
}
