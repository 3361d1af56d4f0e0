// Package server is a thin HTTP facade over the aggregation layer, used by
// the web client and local development: it logs in nowhere itself, it just
// forwards the caller's bearer token to the backend and serves the merged
// feed the mobile screens would compute locally.
package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/feed"
	"github.com/eliseodavidv/proyectocompleto/model"
	"github.com/eliseodavidv/proyectocompleto/normalizer"
	"github.com/eliseodavidv/proyectocompleto/session"
)

type Gateway struct {
	backendBase string
}

func NewGateway(backendBase string) *Gateway {
	return &Gateway{backendBase: backendBase}
}

func (g *Gateway) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/feed", g.handleFeed)

	return router
}

// handleFeed merges the community listings into one feed, honoring the
// filter query params (search, category, objective, sort, and an optional
// calorie range).
func (g *Gateway) handleFeed(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := g.clientFor(c)

	ctx := c.Request.Context()
	var sources [][]model.Post

	plans, err := client.ListFoodPlans(ctx)
	if err != nil {
		abortWithApiError(c, err)
		return
	}
	planPosts := make([]model.Post, 0, len(plans))
	for _, p := range plans {
		planPosts = append(planPosts, normalizer.FromFoodPlan(p))
	}
	sources = append(sources, planPosts)

	routines, err := client.ListRoutines(ctx)
	if err != nil {
		abortWithApiError(c, err)
		return
	}
	routinePosts := make([]model.Post, 0, len(routines))
	for _, r := range routines {
		routinePosts = append(routinePosts, normalizer.FromRoutine(r))
	}
	sources = append(sources, routinePosts)

	progress, err := client.ListProgress(ctx)
	if err != nil {
		abortWithApiError(c, err)
		return
	}
	progressPosts := make([]model.Post, 0, len(progress))
	for _, p := range progress {
		progressPosts = append(progressPosts, normalizer.FromProgress(p))
	}
	sources = append(sources, progressPosts)

	c.JSON(http.StatusOK, gin.H{
		"posts": feed.BuildFeed(sources, filters),
	})
}

// clientFor builds a backend client carrying the caller's bearer token.
// Each request gets its own throwaway session so tokens never leak between
// callers.
func (g *Gateway) clientFor(c *gin.Context) *api.Client {
	sess, _ := session.NewService(session.NewMemoryStore())
	auth := c.GetHeader("Authorization")
	if token := strings.TrimPrefix(auth, "Bearer "); token != auth {
		_ = sess.SetToken(token)
	}
	return api.NewClient(g.backendBase, sess)
}

func filtersFromQuery(c *gin.Context) (model.FilterState, error) {
	filters := model.DefaultFilterState()
	filters.SearchTerm = c.Query("search")
	if category := c.Query("category"); len(category) > 0 {
		filters.Category = category
	}
	if objective := c.Query("objective"); len(objective) > 0 {
		filters.Objective = objective
	}
	switch c.Query("sort") {
	case "alphabetic":
		filters.SortKey = model.SortAlphabetic
	case "calories":
		filters.SortKey = model.SortNumeric
		filters.NumericSortField = "calories"
	}
	minStr, maxStr := c.Query("minCalories"), c.Query("maxCalories")
	if len(minStr) > 0 || len(maxStr) > 0 {
		// an absent bound is open, a malformed one is the caller's error
		min, max := 0.0, float64(1<<30)
		if len(minStr) > 0 {
			v, err := strconv.ParseFloat(minStr, 64)
			if err != nil {
				return filters, fmt.Errorf("invalid minCalories %q", minStr)
			}
			min = v
		}
		if len(maxStr) > 0 {
			v, err := strconv.ParseFloat(maxStr, 64)
			if err != nil {
				return filters, fmt.Errorf("invalid maxCalories %q", maxStr)
			}
			max = v
		}
		filters.Range = &model.NumericRange{Field: "calories", Min: min, Max: max}
	}
	return filters, nil
}

func abortWithApiError(c *gin.Context, err error) {
	apiErr := api.AsError(err)
	if apiErr == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	status := http.StatusBadGateway
	if apiErr.StatusCode > 0 {
		status = apiErr.StatusCode
	}
	c.JSON(status, gin.H{"error": apiErr.Message, "kind": apiErr.Kind})
}
