package normalizer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/model"
	Logger "github.com/eliseodavidv/proyectocompleto/utils/log"
)

// DetailFetcher resolves a summary into a full post, typically via a
// per-id GET against the kind's detail endpoint.
type DetailFetcher func(ctx context.Context, summary api.PostSummaryDTO) (model.Post, error)

// EnrichSummaries resolves listing summaries into full posts, fanning out
// one detail fetch per item concurrently. Partial failure is tolerated: a
// failed item is substituted with a degraded post instead of being dropped
// or aborting the batch. The result has the same length and index order as
// the input.
func EnrichSummaries(ctx context.Context, summaries []api.PostSummaryDTO, fetch DetailFetcher) []model.Post {
	var wg sync.WaitGroup
	var res sync.Map
	for idx := range summaries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			summary := summaries[i]
			post, err := fetch(ctx, summary)
			if err != nil {
				Logger.LogV2.Error(fmt.Sprintf("detail fetch failed for post id %d: %v", summary.Id, err))
				res.Store(i, DegradedPost(summary))
				return
			}
			res.Store(i, post)
		}(idx)
	}
	wg.Wait()

	posts := make([]model.Post, 0, len(summaries))
	for idx := range summaries {
		if post, ok := res.Load(idx); ok {
			posts = append(posts, post.(model.Post))
		}
	}
	return posts
}

// DegradedPost is the stand-in for a summary whose detail fetch failed. The
// row still renders with its title and a degraded-content marker.
func DegradedPost(s api.PostSummaryDTO) model.Post {
	return model.Post{
		Id:        s.Id,
		Kind:      KindFromTipo(s.Tipo),
		Title:     s.Titulo,
		Body:      DegradedBody,
		Author:    author(s.Autor),
		CreatedAt: time.Now(),
	}
}

// KindFromTipo maps the summary type tag (Spanish on some endpoints,
// English path segments on others) to the canonical kind.
func KindFromTipo(tipo string) model.PostKind {
	switch strings.ToLower(tipo) {
	case "rutina", "routine", "routines":
		return model.KindRoutine
	case "progreso", "progress":
		return model.KindProgress
	case "compartida", "shared":
		return model.KindSharedPublication
	}
	return model.KindFoodPlan
}
