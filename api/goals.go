package api

import "context"

func (c *Client) ListMyGoals(ctx context.Context) ([]GoalDTO, error) {
	var out []GoalDTO
	if err := c.getJSON(ctx, "/goals/mine", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGoal(ctx context.Context, in CreateGoalDTO) (*GoalDTO, error) {
	var out GoalDTO
	if err := c.postJSON(ctx, "/goals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
