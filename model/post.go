package model

import (
	"strings"
	"time"
)

type PostKind string

const (
	KindFoodPlan          PostKind = "FOOD_PLAN"
	KindProgress          PostKind = "PROGRESS"
	KindRoutine           PostKind = "ROUTINE"
	KindSharedPublication PostKind = "SHARED_PUBLICATION"
)

/*

Post is the unifying entity for anything shown in a feed. It is a tagged
union: Kind selects which of the per-kind field structs is populated, the
others stay nil.

Id: numeric id, unique only within its source collection. Two posts of
different kinds may legally carry the same id, see Key().
Kind: discriminant.
Title, Body: text content. Body is empty for progress posts that carry no
content field.
CreatedAt: server creation time, falls back to fetch time when the server
omits it.
Author: display name, "Anonymous" when the server omits it.
Verified: set when a specialist verified the publication.
Shared: true for the shared-to-group copy of a publication.
SharedBy, GroupId, SharedAt: only meaningful when Shared is true.

*/
type Post struct {
	Id        int
	Kind      PostKind
	Title     string
	Body      string
	CreatedAt time.Time
	Author    string
	AuthorId  int
	Verified  bool

	Shared   bool
	SharedBy string
	GroupId  int
	SharedAt time.Time

	FoodPlan *FoodPlanFields
	Routine  *RoutineFields
	Progress *ProgressFields
}

type FoodPlanFields struct {
	DietType     string
	Calories     int
	Objectives   string
	Restrictions string
}

type RoutineFields struct {
	RoutineName     string
	DurationMinutes int
	Frequency       string
	Level           string
	Exercises       []Exercise
}

type ProgressFields struct {
	StartDate     time.Time
	EndDate       time.Time
	StartWeight   float64
	EndWeight     float64
	AverageWeight float64
	WeightDelta   float64
}

// PostKey identifies a post inside a merged feed. Items are distinct if
// either the kind or the shared flag differs, even with the same numeric id,
// so an internal post and its shared-to-group copy never collide.
type PostKey struct {
	Id     int
	Kind   PostKind
	Shared bool
}

func (p Post) Key() PostKey {
	return PostKey{Id: p.Id, Kind: p.Kind, Shared: p.Shared}
}

// CategoryFields returns the kind-specific text fields that participate in
// search and category matching.
func (p Post) CategoryFields() []string {
	switch p.Kind {
	case KindFoodPlan, KindSharedPublication:
		if p.FoodPlan != nil {
			return []string{p.FoodPlan.DietType, p.FoodPlan.Objectives, p.FoodPlan.Restrictions}
		}
		return nil
	case KindRoutine:
		if p.Routine != nil {
			return []string{p.Routine.RoutineName, p.Routine.Level, p.Routine.Frequency}
		}
		return nil
	case KindProgress:
		return nil
	}
	return nil
}

// NumericField resolves the named numeric field used by range filters and
// the numeric comparator. The second return is false when the post's kind
// has no such field.
func (p Post) NumericField(name string) (float64, bool) {
	switch strings.ToLower(name) {
	case "calories", "calorias":
		if p.FoodPlan != nil {
			return float64(p.FoodPlan.Calories), true
		}
	case "duration", "duracion":
		if p.Routine != nil {
			return float64(p.Routine.DurationMinutes), true
		}
	case "weightdelta", "cambiopeso":
		if p.Progress != nil {
			return p.Progress.WeightDelta, true
		}
	}
	return 0, false
}

// SearchText is the haystack for the case-insensitive substring filter:
// title, body and every category field.
func (p Post) SearchText() string {
	parts := append([]string{p.Title, p.Body}, p.CategoryFields()...)
	return strings.ToLower(strings.Join(parts, " "))
}
