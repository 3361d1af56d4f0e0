package model

import "time"

// Goal is a personal target a user sets for themselves (lose weight by a
// date, keep a streak). Goals never appear in feeds.
type Goal struct {
	Id          int
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Achieved    bool
	UserId      int
}
