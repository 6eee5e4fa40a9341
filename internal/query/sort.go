package query

import "strings"

const descSuffix = " desc"

// SortClause is one parsed orderBy token: a client field name and the
// requested direction.
type SortClause struct {
	Field      string
	Descending bool
}

// ParseOrderBy splits a comma-separated orderBy expression into clauses.
// A trailing "desc" (any case, space-delimited) marks the clause
// descending; its absence means ascending. Empty tokens are skipped.
func ParseOrderBy(orderBy string) []SortClause {
	if strings.TrimSpace(orderBy) == "" {
		return nil
	}

	var clauses []SortClause
	for _, token := range strings.Split(orderBy, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		clause := SortClause{Field: token}
		if strings.HasSuffix(strings.ToLower(token), descSuffix) {
			clause.Descending = true
			clause.Field = strings.TrimSpace(token[:len(token)-len(descSuffix)])
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// Compile turns an orderBy expression into storage-level order fields for
// the given shape pair. Each clause expands to the mapped paths in order;
// the effective direction is the requested direction flipped when the
// entry is marked Reverse. A registered tiebreaker path is appended
// ascending unless the expression already orders by it, so the composite
// order is total and paging stays reproducible. An empty expression
// compiles to nil.
func (r *Registry) Compile(src, dst, orderBy string) ([]OrderField, error) {
	clauses := ParseOrderBy(orderBy)
	if len(clauses) == 0 {
		return nil, nil
	}

	var fields []OrderField
	for _, clause := range clauses {
		entry, err := r.Resolve(src, dst, clause.Field)
		if err != nil {
			return nil, err
		}
		for _, path := range entry.Paths {
			fields = append(fields, OrderField{
				Path: path,
				Desc: clause.Descending != entry.Reverse,
			})
		}
	}

	if tb := r.tiebreaker(src, dst); tb != "" && !containsPath(fields, tb) {
		fields = append(fields, OrderField{Path: tb})
	}
	return fields, nil
}

// ApplySort rewrites the source's order according to the orderBy
// expression. An empty expression returns the source unchanged.
func ApplySort[T any](s Source[T], reg *Registry, src, dst, orderBy string) (Source[T], error) {
	fields, err := reg.Compile(src, dst, orderBy)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return s, nil
	}
	return s.OrderBy(fields), nil
}

func containsPath(fields []OrderField, path string) bool {
	for _, f := range fields {
		if f.Path == path {
			return true
		}
	}
	return false
}
