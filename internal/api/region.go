package api

import (
	"net/http"
	"regexp"
)

// SigV4 credential scope: Credential=<key id>/<date>/<region>/quicksight/...
var credentialScopeRe = regexp.MustCompile(`Credential=[^/\s]+/\d{8}/([a-z0-9-]+)/quicksight/`)

// regionFromRequest extracts the target region from the SigV4 Authorization
// credential scope. Requests without one fall back to the configured
// default region. The signature itself is never verified.
func regionFromRequest(r *http.Request, fallback string) string {
	if m := credentialScopeRe.FindStringSubmatch(r.Header.Get("Authorization")); m != nil {
		return m[1]
	}
	return fallback
}
