package model

/*

Exercise is a training unit nested inside a routine publication.

Sets, Reps, RestSeconds, WeightKg: training parameters.
ImageUrl: optional demonstration image.

*/
type Exercise struct {
	Id          int
	Name        string
	Description string
	MuscleGroup string
	Sets        int
	Reps        int
	RestSeconds int
	WeightKg    float64
	ImageUrl    string
}
