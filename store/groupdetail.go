package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/eliseodavidv/proyectocompleto/feed"
	"github.com/eliseodavidv/proyectocompleto/model"
	"github.com/eliseodavidv/proyectocompleto/mutation"
	"github.com/eliseodavidv/proyectocompleto/normalizer"
)

// GroupDetailStore backs one group's page: the group itself, its shared
// publications, and the optimistic join/share actions.
type GroupDetailStore struct {
	groups GroupAPI
	coord  *mutation.Coordinator
	user   model.User

	mu      sync.Mutex
	closed  bool
	group   *model.Group
	shared  []model.Post
	filters model.FilterState
	lastErr error
}

func NewGroupDetailStore(groups GroupAPI, coord *mutation.Coordinator, user model.User) *GroupDetailStore {
	return &GroupDetailStore{
		groups:  groups,
		coord:   coord,
		user:    user,
		filters: model.DefaultFilterState(),
	}
}

// Load fetches the group first, then its shared posts. The posts fetch
// depends on the group resolving, so it only starts afterwards. A NOT_FOUND
// here is a primary-resource miss: the screen renders a full "not found"
// state from Err().
func (s *GroupDetailStore) Load(ctx context.Context, groupId int) {
	dto, err := s.groups.GetGroup(ctx, groupId)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.lastErr = err
		}
		return
	}
	group := normalizer.FromGroup(*dto)

	sharedDtos, err := s.groups.ListGroupSharedPosts(ctx, groupId)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.group = &group
			s.lastErr = err
		}
		return
	}
	shared := make([]model.Post, 0, len(sharedDtos))
	for _, d := range sharedDtos {
		shared = append(shared, normalizer.FromShared(d))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.group = &group
	s.shared = shared
	s.lastErr = nil
}

func (s *GroupDetailStore) Group() *model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group
}

func (s *GroupDetailStore) IsMember() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group != nil && s.group.IsMember(s.user.Id)
}

// Join adds the current user to the member list immediately; a second tap
// while the first join is pending is rejected synchronously without a
// network call.
func (s *GroupDetailStore) Join(ctx context.Context, groupId int) (*mutation.Handle, error) {
	var snapshot []model.Member

	return s.coord.Run(ctx, mutation.KindJoinGroup, strconv.Itoa(groupId), mutation.Effect{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.group == nil {
				return
			}
			snapshot = snapshotMembers(s.group.Members)
			if !s.group.IsMember(s.user.Id) {
				s.group.Members = append(s.group.Members, model.Member{Id: s.user.Id, Name: s.user.Name})
			}
		},
		Rollback: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed || s.group == nil {
				return
			}
			s.group.Members = snapshot
		},
		Call: func(ctx context.Context) error {
			return s.groups.JoinGroup(ctx, groupId)
		},
	})
}

// Share appends an optimistic shared copy of the post to the group feed,
// then replaces it with the server's authoritative record on success.
func (s *GroupDetailStore) Share(ctx context.Context, groupId int, post model.Post) (*mutation.Handle, error) {
	var snapshot []model.Post
	var serverCopy *model.Post

	optimistic := model.Post{
		Id:        post.Id,
		Kind:      model.KindSharedPublication,
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: time.Now(),
		Author:    post.Author,
		Shared:    true,
		SharedBy:  s.user.Name,
		GroupId:   groupId,
		SharedAt:  time.Now(),
	}

	return s.coord.Run(ctx, mutation.KindSharePost, shareTarget(groupId, post), mutation.Effect{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			snapshot = snapshotPosts(s.shared)
			s.shared = append(s.shared, optimistic)
		},
		Rollback: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed {
				return
			}
			s.shared = snapshot
		},
		Call: func(ctx context.Context) error {
			dto, err := s.groups.SharePost(ctx, groupId, post.Id)
			if err != nil {
				return err
			}
			normalized := normalizer.FromShared(*dto)
			serverCopy = &normalized
			return nil
		},
		Reconcile: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed || serverCopy == nil {
				return
			}
			// id-substitution: swap the optimistic entry for the
			// authoritative record.
			for i := range s.shared {
				if s.shared[i].Key() == optimistic.Key() {
					s.shared[i] = *serverCopy
					return
				}
			}
		},
	})
}

// Feed is the group's merged, filtered view of shared publications.
func (s *GroupDetailStore) Feed() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return feed.BuildFeed([][]model.Post{s.shared}, s.filters)
}

func (s *GroupDetailStore) SetFilters(f model.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *GroupDetailStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *GroupDetailStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func shareTarget(groupId int, post model.Post) string {
	return strconv.Itoa(groupId) + "/" + strconv.Itoa(post.Id)
}
