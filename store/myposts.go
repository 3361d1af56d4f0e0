package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/feed"
	"github.com/eliseodavidv/proyectocompleto/model"
	"github.com/eliseodavidv/proyectocompleto/mutation"
	"github.com/eliseodavidv/proyectocompleto/normalizer"
)

// KindFilter narrows the my-posts screen to one post kind.
type KindFilter string

const (
	FilterAllKinds  KindFilter = "All"
	FilterFoodPlans KindFilter = "FoodPlan"
	FilterProgress  KindFilter = "ProgressPost"
	FilterRoutines  KindFilter = "RoutinePost"
)

// MyPostsStore backs the my-posts screen: the caller's own publications
// with a kind filter, optimistic creation and optimistic delete.
type MyPostsStore struct {
	posts PostAPI
	coord *mutation.Coordinator

	mu         sync.Mutex
	closed     bool
	items      []model.Post
	kindFilter KindFilter
	filters    model.FilterState
	lastErr    error

	// nextTempId hands out negative placeholder ids to optimistic creates
	// until the server assigns the real one.
	nextTempId int
}

func NewMyPostsStore(posts PostAPI, coord *mutation.Coordinator) *MyPostsStore {
	return &MyPostsStore{
		posts:      posts,
		coord:      coord,
		kindFilter: FilterAllKinds,
		filters:    model.DefaultFilterState(),
		nextTempId: -1,
	}
}

func (s *MyPostsStore) Refresh(ctx context.Context) {
	summaries, err := s.posts.ListMyPosts(ctx)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.lastErr = err
		}
		return
	}

	items := enrichOwnPosts(ctx, s.posts, summaries)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.items = items
	s.lastErr = nil
}

func (s *MyPostsStore) SetKindFilter(filter KindFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kindFilter = filter
}

func (s *MyPostsStore) SetFilters(f model.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// Posts is the rendered list: kind filter first, then the shared filter
// chain and comparator.
func (s *MyPostsStore) Posts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make([]model.Post, 0, len(s.items))
	for _, p := range s.items {
		if kindVisible(p.Kind, s.kindFilter) {
			visible = append(visible, p)
		}
	}
	return feed.BuildFeed([][]model.Post{visible}, s.filters)
}

// CreateFoodPlan appends the new post optimistically with a temporary
// negative id, then substitutes the server-assigned record on success.
func (s *MyPostsStore) CreateFoodPlan(ctx context.Context, in api.CreateFoodPlanDTO) (*mutation.Handle, error) {
	optimistic := model.Post{
		Kind:  model.KindFoodPlan,
		Title: in.Titulo,
		Body:  in.Contenido,
		FoodPlan: &model.FoodPlanFields{
			DietType:     in.TipoDieta,
			Calories:     in.Calorias,
			Objectives:   in.Objetivos,
			Restrictions: in.Restricciones,
		},
	}
	return s.createPost(ctx, optimistic, func(ctx context.Context) (model.Post, error) {
		dto, err := s.posts.CreateFoodPlan(ctx, in)
		if err != nil {
			return model.Post{}, err
		}
		return normalizer.FromFoodPlan(*dto), nil
	})
}

func (s *MyPostsStore) CreateRoutine(ctx context.Context, in api.CreateRoutineDTO) (*mutation.Handle, error) {
	optimistic := model.Post{
		Kind:  model.KindRoutine,
		Title: in.Titulo,
		Body:  in.Descripcion,
		Routine: &model.RoutineFields{
			RoutineName:     in.NombreRutina,
			DurationMinutes: in.Duracion,
			Frequency:       in.Frecuencia,
			Level:           in.Dificultad,
		},
	}
	return s.createPost(ctx, optimistic, func(ctx context.Context) (model.Post, error) {
		dto, err := s.posts.CreateRoutine(ctx, in)
		if err != nil {
			return model.Post{}, err
		}
		return normalizer.FromRoutine(*dto), nil
	})
}

func (s *MyPostsStore) CreateProgress(ctx context.Context, in api.CreateProgressDTO) (*mutation.Handle, error) {
	optimistic := model.Post{
		Kind:  model.KindProgress,
		Title: in.Titulo,
		Body:  in.Contenido,
		Progress: &model.ProgressFields{
			StartWeight: in.PesoInicio,
			EndWeight:   in.PesoFin,
			WeightDelta: in.PesoFin - in.PesoInicio,
		},
	}
	return s.createPost(ctx, optimistic, func(ctx context.Context) (model.Post, error) {
		dto, err := s.posts.CreateProgress(ctx, in)
		if err != nil {
			return model.Post{}, err
		}
		return normalizer.FromProgress(*dto), nil
	})
}

func (s *MyPostsStore) createPost(ctx context.Context, optimistic model.Post, call func(ctx context.Context) (model.Post, error)) (*mutation.Handle, error) {
	var created *model.Post
	var tempId int

	optimistic.CreatedAt = time.Now()

	return s.coord.Run(ctx, mutation.KindCreatePost, createTarget(optimistic), mutation.Effect{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			tempId = s.nextTempId
			s.nextTempId--
			optimistic.Id = tempId
			s.items = append(s.items, optimistic)
		},
		Rollback: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed {
				return
			}
			kept := make([]model.Post, 0, len(s.items))
			for _, p := range s.items {
				if p.Id != tempId || p.Kind != optimistic.Kind {
					kept = append(kept, p)
				}
			}
			s.items = kept
		},
		Call: func(ctx context.Context) error {
			post, err := call(ctx)
			if err != nil {
				return err
			}
			created = &post
			return nil
		},
		Reconcile: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed || created == nil {
				return
			}
			for i := range s.items {
				if s.items[i].Id == tempId && s.items[i].Kind == optimistic.Kind {
					s.items[i] = *created
					return
				}
			}
		},
	})
}

// Delete removes the post from the local list immediately and reconciles
// with the server in the background. On failure the post reappears in its
// original position.
func (s *MyPostsStore) Delete(ctx context.Context, post model.Post) (*mutation.Handle, error) {
	var snapshot []model.Post

	return s.coord.Run(ctx, mutation.KindDeletePost, deleteTarget(post), mutation.Effect{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			snapshot = snapshotPosts(s.items)
			kept := make([]model.Post, 0, len(s.items))
			for _, p := range s.items {
				if p.Key() != post.Key() {
					kept = append(kept, p)
				}
			}
			s.items = kept
		},
		Rollback: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed {
				return
			}
			s.items = snapshot
		},
		Call: func(ctx context.Context) error {
			return s.posts.DeletePost(ctx, kindSegment(post.Kind), post.Id)
		},
	})
}

func (s *MyPostsStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *MyPostsStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func kindVisible(kind model.PostKind, filter KindFilter) bool {
	switch filter {
	case FilterFoodPlans:
		return kind == model.KindFoodPlan
	case FilterProgress:
		return kind == model.KindProgress
	case FilterRoutines:
		return kind == model.KindRoutine
	}
	return true
}

func deleteTarget(post model.Post) string {
	return fmt.Sprintf("%s/%s", post.Kind, strconv.Itoa(post.Id))
}

// createTarget keys the duplicate-submission guard on kind+title: a
// double-tapped submit carries the identical draft.
func createTarget(post model.Post) string {
	return fmt.Sprintf("%s/%s", post.Kind, post.Title)
}
