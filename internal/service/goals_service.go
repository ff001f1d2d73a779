package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/fitfusion/internal/repository"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/validation"
)

type GoalsService struct {
	repo repository.GoalsRepositoryI
}

func NewGoalsService(repo repository.GoalsRepositoryI) *GoalsService {
	if repo == nil {
		log.Fatal("provided nil goals repo")
	}
	return &GoalsService{
		repo: repo,
	}
}

func (gs *GoalsService) List(ctx context.Context) ([]entity.Goal, error) {
	goals, err := gs.repo.List(ctx)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) Get(ctx context.Context, id string) (*entity.Goal, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errorvalues.ErrGoalNotFound
	}
	goal, err := gs.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, repoError(err)
	}
	return goal, nil
}

func (gs *GoalsService) Create(ctx context.Context, draft *entity.GoalDraft) (*entity.Goal, error) {
	if err := validation.Struct(draft); err != nil {
		return nil, err
	}
	goal := entity.Goal{
		Type:       draft.Type,
		Target:     draft.Target,
		TargetLeft: draft.TargetLeft,
	}
	if err := gs.repo.Create(ctx, &goal); err != nil {
		return nil, repoError(err)
	}
	return &goal, nil
}

func (gs *GoalsService) Update(ctx context.Context, id string, draft *entity.GoalDraft) (*entity.Goal, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errorvalues.ErrGoalNotFound
	}
	if err = validation.Struct(draft); err != nil {
		return nil, err
	}
	goal := entity.Goal{
		ID:         uid.String(),
		Type:       draft.Type,
		Target:     draft.Target,
		TargetLeft: draft.TargetLeft,
	}
	if err = gs.repo.Update(ctx, &goal); err != nil {
		return nil, repoError(err)
	}
	return &goal, nil
}

func (gs *GoalsService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return errorvalues.ErrGoalNotFound
	}
	if err = gs.repo.Delete(ctx, uid); err != nil {
		return repoError(err)
	}
	return nil
}
