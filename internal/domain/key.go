package domain

// CompositeKey derives the collection lookup key for a resource scoped by
// account and namespace. Region-scoped resources (data sources, folders)
// pass an empty namespace, yielding an `account::id` key. The key is
// computed once at creation and reused verbatim for every lookup.
func CompositeKey(accountID, namespace, id string) string {
	return accountID + ":" + namespace + ":" + id
}

// NamespacePrefix returns the key prefix shared by every resource in the
// given account and namespace. List operations filter collections by it.
func NamespacePrefix(accountID, namespace string) string {
	return accountID + ":" + namespace + ":"
}
