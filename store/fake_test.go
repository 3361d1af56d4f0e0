package store

import (
	"context"

	"github.com/eliseodavidv/proyectocompleto/api"
)

// function-field fakes so each test wires only the endpoints it touches

type fakePostAPI struct {
	listFoodPlans  func(ctx context.Context) ([]api.FoodPlanDTO, error)
	listRoutines   func(ctx context.Context) ([]api.RoutineDTO, error)
	listProgress   func(ctx context.Context) ([]api.ProgressDTO, error)
	listMyPosts    func(ctx context.Context) ([]api.PostSummaryDTO, error)
	getFoodPlan    func(ctx context.Context, id int) (*api.FoodPlanDTO, error)
	getRoutine     func(ctx context.Context, id int) (*api.RoutineDTO, error)
	createFoodPlan func(ctx context.Context, in api.CreateFoodPlanDTO) (*api.FoodPlanDTO, error)
	createRoutine  func(ctx context.Context, in api.CreateRoutineDTO) (*api.RoutineDTO, error)
	createProgress func(ctx context.Context, in api.CreateProgressDTO) (*api.ProgressDTO, error)
	deletePost     func(ctx context.Context, kindSegment string, id int) error
}

func (f *fakePostAPI) ListFoodPlans(ctx context.Context) ([]api.FoodPlanDTO, error) {
	if f.listFoodPlans == nil {
		return nil, nil
	}
	return f.listFoodPlans(ctx)
}

func (f *fakePostAPI) ListRoutines(ctx context.Context) ([]api.RoutineDTO, error) {
	if f.listRoutines == nil {
		return nil, nil
	}
	return f.listRoutines(ctx)
}

func (f *fakePostAPI) ListProgress(ctx context.Context) ([]api.ProgressDTO, error) {
	if f.listProgress == nil {
		return nil, nil
	}
	return f.listProgress(ctx)
}

func (f *fakePostAPI) ListMyPosts(ctx context.Context) ([]api.PostSummaryDTO, error) {
	if f.listMyPosts == nil {
		return nil, nil
	}
	return f.listMyPosts(ctx)
}

func (f *fakePostAPI) GetFoodPlan(ctx context.Context, id int) (*api.FoodPlanDTO, error) {
	if f.getFoodPlan == nil {
		return &api.FoodPlanDTO{PublicationBaseDTO: api.PublicationBaseDTO{Id: id}}, nil
	}
	return f.getFoodPlan(ctx, id)
}

func (f *fakePostAPI) GetRoutine(ctx context.Context, id int) (*api.RoutineDTO, error) {
	if f.getRoutine == nil {
		return &api.RoutineDTO{PublicationBaseDTO: api.PublicationBaseDTO{Id: id}}, nil
	}
	return f.getRoutine(ctx, id)
}

func (f *fakePostAPI) CreateFoodPlan(ctx context.Context, in api.CreateFoodPlanDTO) (*api.FoodPlanDTO, error) {
	if f.createFoodPlan == nil {
		return &api.FoodPlanDTO{PublicationBaseDTO: api.PublicationBaseDTO{Id: 1, Titulo: in.Titulo}}, nil
	}
	return f.createFoodPlan(ctx, in)
}

func (f *fakePostAPI) CreateRoutine(ctx context.Context, in api.CreateRoutineDTO) (*api.RoutineDTO, error) {
	if f.createRoutine == nil {
		return &api.RoutineDTO{PublicationBaseDTO: api.PublicationBaseDTO{Id: 1, Titulo: in.Titulo}}, nil
	}
	return f.createRoutine(ctx, in)
}

func (f *fakePostAPI) CreateProgress(ctx context.Context, in api.CreateProgressDTO) (*api.ProgressDTO, error) {
	if f.createProgress == nil {
		return &api.ProgressDTO{PublicationBaseDTO: api.PublicationBaseDTO{Id: 1, Titulo: in.Titulo}}, nil
	}
	return f.createProgress(ctx, in)
}

func (f *fakePostAPI) DeletePost(ctx context.Context, kindSegment string, id int) error {
	if f.deletePost == nil {
		return nil
	}
	return f.deletePost(ctx, kindSegment, id)
}

type fakeGroupAPI struct {
	listGroups           func(ctx context.Context) ([]api.GroupDTO, error)
	listPublicGroups     func(ctx context.Context) ([]api.GroupDTO, error)
	listMyGroups         func(ctx context.Context) ([]api.GroupDTO, error)
	getGroup             func(ctx context.Context, id int) (*api.GroupDTO, error)
	createGroup          func(ctx context.Context, in api.CreateGroupDTO) (*api.GroupDTO, error)
	joinGroup            func(ctx context.Context, id int) error
	sharePost            func(ctx context.Context, groupId, postId int) (*api.SharedPublicationDTO, error)
	listGroupSharedPosts func(ctx context.Context, groupId int) ([]api.SharedPublicationDTO, error)
}

func (f *fakeGroupAPI) ListGroups(ctx context.Context) ([]api.GroupDTO, error) {
	if f.listGroups == nil {
		return nil, nil
	}
	return f.listGroups(ctx)
}

func (f *fakeGroupAPI) ListPublicGroups(ctx context.Context) ([]api.GroupDTO, error) {
	if f.listPublicGroups == nil {
		return nil, nil
	}
	return f.listPublicGroups(ctx)
}

func (f *fakeGroupAPI) ListMyGroups(ctx context.Context) ([]api.GroupDTO, error) {
	if f.listMyGroups == nil {
		return nil, nil
	}
	return f.listMyGroups(ctx)
}

func (f *fakeGroupAPI) GetGroup(ctx context.Context, id int) (*api.GroupDTO, error) {
	if f.getGroup == nil {
		return &api.GroupDTO{Id: id}, nil
	}
	return f.getGroup(ctx, id)
}

func (f *fakeGroupAPI) CreateGroup(ctx context.Context, in api.CreateGroupDTO) (*api.GroupDTO, error) {
	if f.createGroup == nil {
		return &api.GroupDTO{Id: 1, Nombre: in.Nombre}, nil
	}
	return f.createGroup(ctx, in)
}

func (f *fakeGroupAPI) JoinGroup(ctx context.Context, id int) error {
	if f.joinGroup == nil {
		return nil
	}
	return f.joinGroup(ctx, id)
}

func (f *fakeGroupAPI) SharePost(ctx context.Context, groupId, postId int) (*api.SharedPublicationDTO, error) {
	if f.sharePost == nil {
		return &api.SharedPublicationDTO{Id: 1, GrupoId: groupId, PublicacionId: postId}, nil
	}
	return f.sharePost(ctx, groupId, postId)
}

func (f *fakeGroupAPI) ListGroupSharedPosts(ctx context.Context, groupId int) ([]api.SharedPublicationDTO, error) {
	if f.listGroupSharedPosts == nil {
		return nil, nil
	}
	return f.listGroupSharedPosts(ctx, groupId)
}
