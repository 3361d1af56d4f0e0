package api

import (
	"context"
	"fmt"
)

// Post kind segments as they appear in URLs.
const (
	KindSegmentFoodPlans = "food-plans"
	KindSegmentRoutines  = "routines"
	KindSegmentProgress  = "progress"
)

func (c *Client) ListFoodPlans(ctx context.Context) ([]FoodPlanDTO, error) {
	var out []FoodPlanDTO
	if err := c.getJSON(ctx, "/posts/food-plans", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFoodPlan(ctx context.Context, id int) (*FoodPlanDTO, error) {
	var out FoodPlanDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/food-plans/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRoutines(ctx context.Context) ([]RoutineDTO, error) {
	var out []RoutineDTO
	if err := c.getJSON(ctx, "/posts/routines", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRoutine(ctx context.Context, id int) (*RoutineDTO, error) {
	var out RoutineDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/routines/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProgress(ctx context.Context) ([]ProgressDTO, error) {
	var out []ProgressDTO
	if err := c.getJSON(ctx, "/posts/progress", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyPosts returns summaries of the caller's own posts. Full content
// requires a per-id follow-up fetch, see normalizer.EnrichSummaries.
func (c *Client) ListMyPosts(ctx context.Context) ([]PostSummaryDTO, error) {
	var out []PostSummaryDTO
	if err := c.getJSON(ctx, "/posts/mine", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateFoodPlan(ctx context.Context, in CreateFoodPlanDTO) (*FoodPlanDTO, error) {
	var out FoodPlanDTO
	if err := c.postJSON(ctx, "/posts/food-plans", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRoutine(ctx context.Context, in CreateRoutineDTO) (*RoutineDTO, error) {
	var out RoutineDTO
	if err := c.postJSON(ctx, "/posts/routines", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProgress(ctx context.Context, in CreateProgressDTO) (*ProgressDTO, error) {
	var out ProgressDTO
	if err := c.postJSON(ctx, "/posts/progress", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost deletes one post. The endpoint is idempotent: a repeated delete
// answers NOT_FOUND, which callers treat as success, so it is mapped to nil
// here.
func (c *Client) DeletePost(ctx context.Context, kindSegment string, id int) error {
	err := c.delete(ctx, fmt.Sprintf("/posts/%s/%d", kindSegment, id))
	if IsNotFound(err) {
		return nil
	}
	return err
}
