package model

import "time"

// Comment is append-only: there is no edit or delete.
type Comment struct {
	Id        int
	PostId    int
	Content   string
	Author    string
	CreatedAt time.Time
}
