package model

type SortKey string

const (
	SortRecent     SortKey = "recent"
	SortAlphabetic SortKey = "alphabetic"
	SortNumeric    SortKey = "numeric"
)

// FilterAll is the sentinel meaning "don't filter on this dimension".
const FilterAll = "all"

/*

FilterState is the ephemeral, UI-scoped filter a screen applies to its feed.
It is never persisted; ResetFilterState returns it to the fixed initial
state in one action.

SearchTerm: case-insensitive substring over title+body+category fields
Category: exact match against a post's category fields, or FilterAll
Objective: substring match, or FilterAll
Range: numeric range over the named field, nil means no range filter
SortKey: comparator selection; NumericSortField names the field when
SortKey is SortNumeric

*/
type FilterState struct {
	SearchTerm       string
	Category         string
	Objective        string
	Range            *NumericRange
	SortKey          SortKey
	NumericSortField string
}

type NumericRange struct {
	Field string
	Min   float64
	Max   float64
}

func DefaultFilterState() FilterState {
	return FilterState{
		SearchTerm: "",
		Category:   FilterAll,
		Objective:  FilterAll,
		Range:      nil,
		SortKey:    SortRecent,
	}
}
