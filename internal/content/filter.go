package content

// All is the reserved category selection meaning "no filter".
const All = "all"

// Categorized is implemented by records that belong to one category.
type Categorized interface {
	CategoryKey() string
}

// FilterByCategory returns the records whose category equals selected, in
// their original order. Selecting All returns records unchanged. A selection
// with no matches yields an empty, non-nil slice.
func FilterByCategory[T Categorized](records []T, selected string) []T {
	if selected == All {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.CategoryKey() == selected {
			out = append(out, r)
		}
	}
	return out
}
