package domain

import "strings"

// Operators supported by search filters.
const (
	OpStringEquals = "StringEquals"
	OpStartsWith   = "StartsWith"
)

// SearchFilter is one predicate spec in a search request.
type SearchFilter struct {
	Operator string `json:"Operator"`
	Name     string `json:"Name"`
	Value    string `json:"Value"`
}

// GroupMatcher is a compiled, side-effect-free predicate over groups.
type GroupMatcher func(*Group) bool

// groupFilterAttributes maps the filterable attribute names for group
// search onto their accessors.
var groupFilterAttributes = map[string]func(*Group) string{
	"GROUP_NAME":        func(g *Group) string { return g.GroupName },
	"GROUP_DESCRIPTION": func(g *Group) string { return g.Description },
}

// CompileGroupFilters validates the filter specs and compiles them into a
// single conjunctive predicate. Unknown attribute names or operators fail
// here, before any group is inspected.
func CompileGroupFilters(filters []SearchFilter) (GroupMatcher, error) {
	type compiled struct {
		get   func(*Group) string
		op    string
		value string
	}
	preds := make([]compiled, 0, len(filters))
	for _, f := range filters {
		get, ok := groupFilterAttributes[f.Name]
		if !ok {
			return nil, ErrValidation(
				"1 validation error detected: Value '%s' at 'filters' failed to satisfy constraint: Member must satisfy enum value set: [GROUP_NAME, GROUP_DESCRIPTION]",
				f.Name,
			)
		}
		switch f.Operator {
		case OpStringEquals, OpStartsWith:
		default:
			return nil, ErrValidation(
				"1 validation error detected: Value '%s' at 'filters' failed to satisfy constraint: Member must satisfy enum value set: [StringEquals, StartsWith]",
				f.Operator,
			)
		}
		preds = append(preds, compiled{get: get, op: f.Operator, value: f.Value})
	}
	return func(g *Group) bool {
		for _, p := range preds {
			attr := p.get(g)
			switch p.op {
			case OpStringEquals:
				if attr != p.value {
					return false
				}
			case OpStartsWith:
				if !strings.HasPrefix(attr, p.value) {
					return false
				}
			}
		}
		return true
	}, nil
}
