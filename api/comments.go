package api

import (
	"context"
	"fmt"
)

func (c *Client) CreateComment(ctx context.Context, in CreateCommentDTO) (*CommentDTO, error) {
	var out CommentDTO
	if err := c.postJSON(ctx, "/comments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListComments(ctx context.Context, postId int) ([]CommentDTO, error) {
	var out []CommentDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/comments/post/%d", postId), &out); err != nil {
		return nil, err
	}
	return out, nil
}
