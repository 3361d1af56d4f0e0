// Package store holds the per-screen state owners. Each store owns the
// posts/groups it fetched exclusively: there is no cross-screen shared
// cache, a screen re-fetches on focus and its store is closed on unmount.
// A closed store drops any fetch result that arrives late instead of
// applying it.
package store

import (
	"context"

	"github.com/jinzhu/copier"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/model"
)

// PostAPI is the slice of the REST client the post screens consume.
type PostAPI interface {
	ListFoodPlans(ctx context.Context) ([]api.FoodPlanDTO, error)
	ListRoutines(ctx context.Context) ([]api.RoutineDTO, error)
	ListProgress(ctx context.Context) ([]api.ProgressDTO, error)
	ListMyPosts(ctx context.Context) ([]api.PostSummaryDTO, error)
	GetFoodPlan(ctx context.Context, id int) (*api.FoodPlanDTO, error)
	GetRoutine(ctx context.Context, id int) (*api.RoutineDTO, error)
	CreateFoodPlan(ctx context.Context, in api.CreateFoodPlanDTO) (*api.FoodPlanDTO, error)
	CreateRoutine(ctx context.Context, in api.CreateRoutineDTO) (*api.RoutineDTO, error)
	CreateProgress(ctx context.Context, in api.CreateProgressDTO) (*api.ProgressDTO, error)
	DeletePost(ctx context.Context, kindSegment string, id int) error
}

// GroupAPI is the slice of the REST client the group screens consume.
type GroupAPI interface {
	ListGroups(ctx context.Context) ([]api.GroupDTO, error)
	ListPublicGroups(ctx context.Context) ([]api.GroupDTO, error)
	ListMyGroups(ctx context.Context) ([]api.GroupDTO, error)
	GetGroup(ctx context.Context, id int) (*api.GroupDTO, error)
	CreateGroup(ctx context.Context, in api.CreateGroupDTO) (*api.GroupDTO, error)
	JoinGroup(ctx context.Context, id int) error
	SharePost(ctx context.Context, groupId, postId int) (*api.SharedPublicationDTO, error)
	ListGroupSharedPosts(ctx context.Context, groupId int) ([]api.SharedPublicationDTO, error)
}

// snapshotPosts deep-copies a post list so a rollback can restore it
// exactly, original positions included.
func snapshotPosts(posts []model.Post) []model.Post {
	snapshot := []model.Post{}
	// DeepCopy so nested exercise slices don't alias the live list.
	_ = copier.CopyWithOption(&snapshot, &posts, copier.Option{DeepCopy: true})
	return snapshot
}

func snapshotMembers(members []model.Member) []model.Member {
	snapshot := []model.Member{}
	_ = copier.CopyWithOption(&snapshot, &members, copier.Option{DeepCopy: true})
	return snapshot
}

// kindSegment maps a post kind to its URL segment for deletes.
func kindSegment(kind model.PostKind) string {
	switch kind {
	case model.KindRoutine:
		return api.KindSegmentRoutines
	case model.KindProgress:
		return api.KindSegmentProgress
	}
	return api.KindSegmentFoodPlans
}
