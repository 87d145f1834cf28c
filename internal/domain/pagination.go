package domain

import (
	"encoding/base64"
	"strconv"
)

// DefaultMaxResults is the default page size when none is specified.
const DefaultMaxResults = 100

// PageRequest holds pagination parameters for list operations.
type PageRequest struct {
	MaxResults int
	NextToken  string // opaque token (base64-encoded offset)
}

// Offset decodes the token into an integer offset.
// Returns 0 if the token is empty or invalid.
func (p PageRequest) Offset() int {
	if p.NextToken == "" {
		return 0
	}
	decoded, err := base64.StdEncoding.DecodeString(p.NextToken)
	if err != nil {
		return 0
	}
	offset, err := strconv.Atoi(string(decoded))
	if err != nil {
		return 0
	}
	return offset
}

// Limit returns the effective page size.
func (p PageRequest) Limit() int {
	if p.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return p.MaxResults
}

// EncodePageToken creates an opaque token from an offset.
// Returns empty string if offset is 0 or negative.
func EncodePageToken(offset int) string {
	if offset <= 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// Paginate slices one page out of the full ordered result list and returns
// it with the token for the following page (empty when exhausted).
func Paginate[T any](items []T, page PageRequest) ([]T, string) {
	offset := page.Offset()
	if offset >= len(items) {
		return []T{}, ""
	}
	end := offset + page.Limit()
	if end >= len(items) {
		return items[offset:], ""
	}
	return items[offset:end], EncodePageToken(end)
}
