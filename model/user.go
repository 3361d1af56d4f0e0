package model

/*

User is a data model for a VidaFit user.

Id: primary key, used for membership checks and own-post filtering
Name: display name, doesn't need to be unique
Email: login identity

*/
type User struct {
	Id    int
	Name  string
	Email string
}
