package api

import (
	"context"
	"fmt"
)

func (c *Client) ListGroups(ctx context.Context) ([]GroupDTO, error) {
	var out []GroupDTO
	if err := c.getJSON(ctx, "/groups", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPublicGroups(ctx context.Context) ([]GroupDTO, error) {
	var out []GroupDTO
	if err := c.getJSON(ctx, "/groups/public", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMyGroups(ctx context.Context) ([]GroupDTO, error) {
	var out []GroupDTO
	if err := c.getJSON(ctx, "/groups/mine", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetGroup(ctx context.Context, id int) (*GroupDTO, error) {
	var out GroupDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/groups/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateGroup creates a group. Answers CONFLICT when the name is taken,
// which the form surfaces inline.
func (c *Client) CreateGroup(ctx context.Context, in CreateGroupDTO) (*GroupDTO, error) {
	var out GroupDTO
	if err := c.postJSON(ctx, "/groups", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id int, in CreateGroupDTO) (*GroupDTO, error) {
	var out GroupDTO
	if err := c.putJSON(ctx, fmt.Sprintf("/groups/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinGroup is idempotent server-side (repeated join is a no-op success),
// so it goes through the retry wrapper.
func (c *Client) JoinGroup(ctx context.Context, id int) error {
	return c.postIdempotent(ctx, fmt.Sprintf("/groups/%d/join", id), nil, nil)
}

// SharePost shares an existing publication into a group, creating a
// shared-publication record visible to group members.
func (c *Client) SharePost(ctx context.Context, groupId, postId int) (*SharedPublicationDTO, error) {
	var out SharedPublicationDTO
	if err := c.postJSON(ctx, fmt.Sprintf("/groups/%d/share/%d", groupId, postId), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListGroupSharedPosts(ctx context.Context, groupId int) ([]SharedPublicationDTO, error) {
	var out []SharedPublicationDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/groups/%d/shared", groupId), &out); err != nil {
		return nil, err
	}
	return out, nil
}
