package api

import "context"

func (c *Client) ListExercises(ctx context.Context) ([]ExerciseDTO, error) {
	var out []ExerciseDTO
	if err := c.getJSON(ctx, "/exercises", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExercise(ctx context.Context, in CreateExerciseDTO) (*ExerciseDTO, error) {
	var out ExerciseDTO
	if err := c.postJSON(ctx, "/exercises", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
