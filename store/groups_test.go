package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/model"
	"github.com/eliseodavidv/proyectocompleto/mutation"
)

func TestGroupsRefreshFillsAllListings(t *testing.T) {
	fake := &fakeGroupAPI{
		listGroups: func(context.Context) ([]api.GroupDTO, error) {
			return []api.GroupDTO{{Id: 1, Nombre: "Runners"}, {Id: 2, Nombre: "Yoga"}}, nil
		},
		listPublicGroups: func(context.Context) ([]api.GroupDTO, error) {
			return []api.GroupDTO{{Id: 1, Nombre: "Runners", Tipo: "PUBLICO"}}, nil
		},
		listMyGroups: func(context.Context) ([]api.GroupDTO, error) {
			return []api.GroupDTO{{Id: 2, Nombre: "Yoga"}}, nil
		},
	}
	s := NewGroupsStore(fake, mutation.NewCoordinator())
	s.Refresh(context.Background())

	require.NoError(t, s.Err())
	assert.Len(t, s.All(), 2)
	require.Len(t, s.Public(), 1)
	assert.Equal(t, model.VisibilityPublic, s.Public()[0].Visibility)
	require.Len(t, s.Mine(), 1)
	assert.Equal(t, "Yoga", s.Mine()[0].Name)
}

func TestCreateGroupSwapsTempIdForServerId(t *testing.T) {
	fake := &fakeGroupAPI{
		createGroup: func(_ context.Context, in api.CreateGroupDTO) (*api.GroupDTO, error) {
			return &api.GroupDTO{Id: 42, Nombre: in.Nombre, Tipo: in.Tipo}, nil
		},
	}
	s := NewGroupsStore(fake, mutation.NewCoordinator())

	handle, err := s.Create(context.Background(), "Ciclismo", "salidas semanales", model.VisibilityPublic)
	require.NoError(t, err)

	pending := s.Mine()
	require.Len(t, pending, 1)
	assert.Negative(t, pending[0].Id, "optimistic entry carries a placeholder id")

	require.NoError(t, <-handle.Done)
	committed := s.Mine()
	require.Len(t, committed, 1)
	assert.Equal(t, 42, committed[0].Id)
	assert.Equal(t, "Ciclismo", committed[0].Name)
}

func TestCreateGroupConflictRollsBack(t *testing.T) {
	fake := &fakeGroupAPI{
		createGroup: func(context.Context, api.CreateGroupDTO) (*api.GroupDTO, error) {
			return nil, &api.Error{Kind: api.ErrConflict, StatusCode: 409, Message: "nombre duplicado"}
		},
	}
	s := NewGroupsStore(fake, mutation.NewCoordinator())

	handle, err := s.Create(context.Background(), "Runners", "", model.VisibilityPrivate)
	require.NoError(t, err)
	require.Len(t, s.Mine(), 1)

	callErr := <-handle.Done
	require.Error(t, callErr)
	assert.Equal(t, api.ErrConflict, api.AsError(callErr).Kind)
	assert.Empty(t, s.Mine(), "conflict removes the optimistic entry")
}
