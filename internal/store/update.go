package store

import "strings"

// fieldSet collects the (column, value) pairs of a partial update. Callers
// add only the fields present on the patch; building the statement from an
// empty set is rejected up front so the store never sees a SET-less UPDATE.
type fieldSet struct {
	columns []string
	args    []any
}

func (f *fieldSet) set(column string, value any) {
	f.columns = append(f.columns, column)
	f.args = append(f.args, value)
}

func (f *fieldSet) empty() bool {
	return len(f.columns) == 0
}

// assignments renders the SET clause body, e.g. "name = ?, date = ?".
func (f *fieldSet) assignments() string {
	parts := make([]string, len(f.columns))
	for i, c := range f.columns {
		parts[i] = c + " = ?"
	}
	return strings.Join(parts, ", ")
}
