package normalizer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/model"
)

func TestEnrichSummariesToleratesPartialFailure(t *testing.T) {
	summaries := []api.PostSummaryDTO{
		{Id: 1, Titulo: "uno", Tipo: "RUTINA"},
		{Id: 2, Titulo: "dos", Tipo: "RUTINA"},
		{Id: 3, Titulo: "tres", Tipo: "RUTINA"},
	}

	posts := EnrichSummaries(context.Background(), summaries, func(_ context.Context, s api.PostSummaryDTO) (model.Post, error) {
		if s.Id == 2 {
			return model.Post{}, errors.New("detail fetch blew up")
		}
		return model.Post{Id: s.Id, Kind: model.KindRoutine, Title: s.Titulo, Body: "full content"}, nil
	})

	// 3 in, 3 out: the failed item is degraded, not dropped
	require.Len(t, posts, 3)
	assert.Equal(t, "full content", posts[0].Body)
	assert.Equal(t, DegradedBody, posts[1].Body)
	assert.Equal(t, "dos", posts[1].Title)
	assert.Equal(t, "full content", posts[2].Body)
}

func TestEnrichSummariesFansOutConcurrently(t *testing.T) {
	const n = 8
	summaries := make([]api.PostSummaryDTO, n)
	for i := range summaries {
		summaries[i] = api.PostSummaryDTO{Id: i + 1, Tipo: "PLAN_ALIMENTACION"}
	}

	var inFlight, peak int64
	posts := EnrichSummaries(context.Background(), summaries, func(_ context.Context, s api.PostSummaryDTO) (model.Post, error) {
		current := atomic.AddInt64(&inFlight, 1)
		for {
			observed := atomic.LoadInt64(&peak)
			if current <= observed || atomic.CompareAndSwapInt64(&peak, observed, current) {
				break
			}
		}
		// widen the overlap window so serial execution is distinguishable
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		return model.Post{Id: s.Id, Kind: model.KindFoodPlan}, nil
	})

	require.Len(t, posts, n)
	// serial execution would never overlap
	assert.Greater(t, atomic.LoadInt64(&peak), int64(1))
}

func TestEnrichSummariesPreservesInputOrder(t *testing.T) {
	summaries := []api.PostSummaryDTO{
		{Id: 30, Tipo: "RUTINA"},
		{Id: 10, Tipo: "RUTINA"},
		{Id: 20, Tipo: "RUTINA"},
	}

	posts := EnrichSummaries(context.Background(), summaries, func(_ context.Context, s api.PostSummaryDTO) (model.Post, error) {
		return model.Post{Id: s.Id, Kind: model.KindRoutine}, nil
	})

	require.Len(t, posts, 3)
	assert.Equal(t, []int{30, 10, 20}, []int{posts[0].Id, posts[1].Id, posts[2].Id})
}

func TestKindFromTipo(t *testing.T) {
	assert.Equal(t, model.KindRoutine, KindFromTipo("RUTINA"))
	assert.Equal(t, model.KindProgress, KindFromTipo("progreso"))
	assert.Equal(t, model.KindFoodPlan, KindFromTipo("PLAN_ALIMENTACION"))
	assert.Equal(t, model.KindSharedPublication, KindFromTipo("compartida"))
}
