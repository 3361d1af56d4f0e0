package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/feed"
	"github.com/eliseodavidv/proyectocompleto/model"
	"github.com/eliseodavidv/proyectocompleto/normalizer"
	Logger "github.com/eliseodavidv/proyectocompleto/utils/log"
)

// DashboardStore backs the home screen: the caller's own posts and the
// community feed, fetched independently. Either fetch may resolve first;
// each updates its own slice of state when it does.
type DashboardStore struct {
	posts PostAPI
	user  model.User

	mu        sync.Mutex
	closed    bool
	own       []model.Post
	community []model.Post
	filters   model.FilterState
	lastErr   error
}

func NewDashboardStore(posts PostAPI, user model.User) *DashboardStore {
	return &DashboardStore{
		posts:   posts,
		user:    user,
		filters: model.DefaultFilterState(),
	}
}

// Refresh fires the own-posts and community fetches concurrently and
// returns once both resolved. Each result is applied as it arrives; a
// store closed mid-flight applies neither.
func (s *DashboardStore) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		own, err := s.fetchOwn(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		if err != nil {
			s.lastErr = err
			return
		}
		s.own = own
	}()

	go func() {
		defer wg.Done()
		community, err := s.fetchCommunity(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		if err != nil {
			s.lastErr = err
			return
		}
		s.community = community
	}()

	wg.Wait()
}

func (s *DashboardStore) fetchOwn(ctx context.Context) ([]model.Post, error) {
	summaries, err := s.posts.ListMyPosts(ctx)
	if err != nil {
		return nil, err
	}
	return enrichOwnPosts(ctx, s.posts, summaries), nil
}

// fetchCommunity pulls the three public listings concurrently and drops the
// caller's own posts: the community feed shows everyone else.
func (s *DashboardStore) fetchCommunity(ctx context.Context) ([]model.Post, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var posts []model.Post
	var firstErr error

	collect := func(batch []model.Post, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		posts = append(posts, batch...)
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		plans, err := s.posts.ListFoodPlans(ctx)
		batch := make([]model.Post, 0, len(plans))
		for _, p := range plans {
			batch = append(batch, normalizer.FromFoodPlan(p))
		}
		collect(batch, err)
	}()
	go func() {
		defer wg.Done()
		routines, err := s.posts.ListRoutines(ctx)
		batch := make([]model.Post, 0, len(routines))
		for _, r := range routines {
			batch = append(batch, normalizer.FromRoutine(r))
		}
		collect(batch, err)
	}()
	go func() {
		defer wg.Done()
		progress, err := s.posts.ListProgress(ctx)
		batch := make([]model.Post, 0, len(progress))
		for _, p := range progress {
			batch = append(batch, normalizer.FromProgress(p))
		}
		collect(batch, err)
	}()
	wg.Wait()

	if firstErr != nil {
		Logger.LogV2.Error(fmt.Sprintf("community fetch failed: %v", firstErr))
		return nil, firstErr
	}

	community := posts[:0:0]
	for _, p := range posts {
		if p.AuthorId != 0 && p.AuthorId == s.user.Id {
			continue
		}
		community = append(community, p)
	}
	return community, nil
}

// Feed recomputes the merged view synchronously from the current state.
func (s *DashboardStore) Feed() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return feed.BuildFeed([][]model.Post{s.own, s.community}, s.filters)
}

func (s *DashboardStore) SetFilters(f model.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// ResetFilters restores the fixed initial filter state in one action.
func (s *DashboardStore) ResetFilters() {
	s.SetFilters(model.DefaultFilterState())
}

func (s *DashboardStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close marks the screen unmounted. Results of in-flight fetches are
// dropped from then on.
func (s *DashboardStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// enrichOwnPosts resolves own-post summaries through the per-kind detail
// endpoints, degrading individual failures. Progress posts have no detail
// endpoint, their full content comes from the progress listing instead.
func enrichOwnPosts(ctx context.Context, client PostAPI, summaries []api.PostSummaryDTO) []model.Post {
	progressById := map[int]model.Post{}
	for _, s := range summaries {
		if normalizer.KindFromTipo(s.Tipo) != model.KindProgress {
			continue
		}
		listed, err := client.ListProgress(ctx)
		if err != nil {
			Logger.LogV2.Error(fmt.Sprintf("progress listing failed: %v", err))
			break
		}
		for _, p := range listed {
			progressById[p.Id] = normalizer.FromProgress(p)
		}
		break
	}

	return normalizer.EnrichSummaries(ctx, summaries, func(ctx context.Context, s api.PostSummaryDTO) (model.Post, error) {
		switch normalizer.KindFromTipo(s.Tipo) {
		case model.KindRoutine:
			dto, err := client.GetRoutine(ctx, s.Id)
			if err != nil {
				return model.Post{}, err
			}
			return normalizer.FromRoutine(*dto), nil
		case model.KindProgress:
			post, ok := progressById[s.Id]
			if !ok {
				return model.Post{}, fmt.Errorf("progress post %d missing from listing", s.Id)
			}
			return post, nil
		default:
			dto, err := client.GetFoodPlan(ctx, s.Id)
			if err != nil {
				return model.Post{}, err
			}
			return normalizer.FromFoodPlan(*dto), nil
		}
	})
}
