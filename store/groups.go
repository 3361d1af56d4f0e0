package store

import (
	"context"
	"sync"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/model"
	"github.com/eliseodavidv/proyectocompleto/mutation"
	"github.com/eliseodavidv/proyectocompleto/normalizer"
)

// GroupsStore backs the group listing screens (all / public / mine) and
// group creation.
type GroupsStore struct {
	groups GroupAPI
	coord  *mutation.Coordinator

	mu      sync.Mutex
	closed  bool
	all     []model.Group
	public  []model.Group
	mine    []model.Group
	lastErr error

	// nextTempId hands out negative placeholder ids for optimistic group
	// creation until the server assigns the real one.
	nextTempId int
}

func NewGroupsStore(groups GroupAPI, coord *mutation.Coordinator) *GroupsStore {
	return &GroupsStore{groups: groups, coord: coord, nextTempId: -1}
}

// Refresh loads the three listings concurrently, each updating its own
// slice of state as it resolves.
func (s *GroupsStore) Refresh(ctx context.Context) {
	var wg sync.WaitGroup

	fetch := func(list func(context.Context) ([]api.GroupDTO, error), apply func([]model.Group)) {
		defer wg.Done()
		dtos, err := list(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		if err != nil {
			s.lastErr = err
			return
		}
		groups := make([]model.Group, 0, len(dtos))
		for _, d := range dtos {
			groups = append(groups, normalizer.FromGroup(d))
		}
		apply(groups)
	}

	wg.Add(3)
	go fetch(s.groups.ListGroups, func(g []model.Group) { s.all = g })
	go fetch(s.groups.ListPublicGroups, func(g []model.Group) { s.public = g })
	go fetch(s.groups.ListMyGroups, func(g []model.Group) { s.mine = g })
	wg.Wait()
}

func (s *GroupsStore) All() []model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Group{}, s.all...)
}

func (s *GroupsStore) Public() []model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Group{}, s.public...)
}

func (s *GroupsStore) Mine() []model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Group{}, s.mine...)
}

// Create appends an optimistic group with a temporary negative id, then
// substitutes the server-assigned record on success. A duplicate name comes
// back as CONFLICT and rolls the optimistic entry back; the form surfaces
// it inline.
func (s *GroupsStore) Create(ctx context.Context, name, description string, visibility model.Visibility) (*mutation.Handle, error) {
	var created *model.Group
	var tempId int

	tipo := "PRIVADO"
	if visibility == model.VisibilityPublic {
		tipo = "PUBLICO"
	}

	return s.coord.Run(ctx, mutation.KindCreateGroup, name, mutation.Effect{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			tempId = s.nextTempId
			s.nextTempId--
			s.mine = append(s.mine, model.Group{
				Id:          tempId,
				Name:        name,
				Description: description,
				Visibility:  visibility,
			})
		},
		Rollback: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed {
				return
			}
			kept := make([]model.Group, 0, len(s.mine))
			for _, g := range s.mine {
				if g.Id != tempId {
					kept = append(kept, g)
				}
			}
			s.mine = kept
		},
		Call: func(ctx context.Context) error {
			dto, err := s.groups.CreateGroup(ctx, api.CreateGroupDTO{
				Nombre:      name,
				Descripcion: description,
				Tipo:        tipo,
			})
			if err != nil {
				return err
			}
			group := normalizer.FromGroup(*dto)
			created = &group
			return nil
		},
		Reconcile: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed || created == nil {
				return
			}
			for i := range s.mine {
				if s.mine[i].Id == tempId {
					s.mine[i] = *created
					return
				}
			}
		},
	})
}

func (s *GroupsStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *GroupsStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
