package domain

// Tag is a key/value label attached to a resource at creation time.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}
