package model

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

/*

Group is a community of users who share publications with each other.

Id: primary key
Name: display name, unique server-side (creating a duplicate yields CONFLICT)
Visibility: PUBLIC groups are joinable by anyone, PRIVATE by invitation
Members: current membership. Admin is always one of Members.
Admin: the user who created the group

*/
type Group struct {
	Id          int
	Name        string
	Description string
	Visibility  Visibility
	Members     []Member
	Admin       Member
	CreatedAt   time.Time
}

type Member struct {
	Id   int
	Name string
}

// IsMember reports whether the user belongs to the group.
func (g Group) IsMember(userId int) bool {
	for _, m := range g.Members {
		if m.Id == userId {
			return true
		}
	}
	return false
}
