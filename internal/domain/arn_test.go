package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"us-east-1", "aws"},
		{"eu-west-1", "aws"},
		{"cn-north-1", "aws-cn"},
		{"us-gov-west-1", "aws-us-gov"},
		{"us-iso-east-1", "aws-iso"},
		{"us-isob-east-1", "aws-iso-b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Partition(tt.region), "region %s", tt.region)
	}
}

func TestResourceARN(t *testing.T) {
	assert.Equal(t,
		"arn:aws:quicksight:eu-west-1:111111111111:data-source/my-data-source",
		ResourceARN("eu-west-1", "111111111111", "data-source/my-data-source"))
	assert.Equal(t,
		"arn:aws-cn:quicksight:cn-north-1:123456789012:group/default/admins",
		ResourceARN("cn-north-1", "123456789012", "group/default/admins"))
}

func TestPrincipalKind(t *testing.T) {
	kind, name, ok := PrincipalKind("arn:aws:quicksight:us-east-1:123456789012:user/default/user1")
	assert.True(t, ok)
	assert.Equal(t, "user", kind)
	assert.Equal(t, "user1", name)

	kind, name, ok = PrincipalKind("arn:aws:quicksight:us-east-1:123456789012:group/default/group1")
	assert.True(t, ok)
	assert.Equal(t, "group", kind)
	assert.Equal(t, "group1", name)
}

func TestPrincipalKind_Rejects(t *testing.T) {
	cases := []string{
		"not-an-arn",
		"arn:aws:s3:::some-bucket",
		"arn:aws:iam::123456789012:role/some-role",
		"arn:aws:quicksight:us-east-1:123456789012:folder/f1",
		"arn:aws:quicksight:us-east-1:123456789012:user",
	}
	for _, c := range cases {
		_, _, ok := PrincipalKind(c)
		assert.False(t, ok, "expected %q to be rejected", c)
	}
}
