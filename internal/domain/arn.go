package domain

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

// Partition returns the ARN partition for a region.
func Partition(region string) string {
	switch {
	case strings.HasPrefix(region, "cn-"):
		return "aws-cn"
	case strings.HasPrefix(region, "us-gov-"):
		return "aws-us-gov"
	case strings.HasPrefix(region, "us-isob-"):
		return "aws-iso-b"
	case strings.HasPrefix(region, "us-iso-"):
		return "aws-iso"
	default:
		return "aws"
	}
}

// ResourceARN builds a quicksight ARN for the given resource path,
// e.g. ResourceARN("eu-west-1", "111111111111", "data-source/X").
func ResourceARN(region, accountID, resource string) string {
	return "arn:" + Partition(region) + ":quicksight:" + region + ":" + accountID + ":" + resource
}

// PrincipalKind classifies a principal ARN as a user or a group and returns
// the principal's name. ok is false for anything that is not a well-formed
// quicksight user or group ARN.
func PrincipalKind(principalARN string) (kind, name string, ok bool) {
	parsed, err := arn.Parse(principalARN)
	if err != nil || parsed.Service != "quicksight" {
		return "", "", false
	}
	// Resource is "<kind>/<namespace>/<name>", e.g. "user/default/user1".
	parts := strings.SplitN(parsed.Resource, "/", 3)
	if len(parts) != 3 {
		return "", "", false
	}
	if parts[0] != "user" && parts[0] != "group" {
		return "", "", false
	}
	return parts[0], parts[2], true
}
