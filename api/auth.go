package api

import (
	"context"

	"github.com/pkg/errors"

	"github.com/eliseodavidv/proyectocompleto/model"
)

// Login exchanges credentials for a bearer token. On success the token is
// stored in the session service so follow-up requests carry it.
func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(resp.Token); err != nil {
		return nil, errors.Wrap(err, "fail to persist token")
	}
	user := &model.User{Id: resp.Id, Name: resp.Nombre, Email: resp.Email}
	c.session.SetCurrentUser(user)
	return user, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/register", RegisterRequest{Nombre: name, Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(resp.Token); err != nil {
		return nil, errors.Wrap(err, "fail to persist token")
	}
	user := &model.User{Id: resp.Id, Name: resp.Nombre, Email: resp.Email}
	c.session.SetCurrentUser(user)
	return user, nil
}

// Logout drops the session locally. The backend keeps no server-side
// session state beyond token expiry.
func (c *Client) Logout() error {
	return c.session.Clear()
}
