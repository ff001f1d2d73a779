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

type ActivitiesService struct {
	repo repository.ActivitiesRepositoryI
}

func NewActivitiesService(repo repository.ActivitiesRepositoryI) *ActivitiesService {
	if repo == nil {
		log.Fatal("provided nil activities repo")
	}
	return &ActivitiesService{
		repo: repo,
	}
}

func (as *ActivitiesService) List(ctx context.Context) ([]entity.Activity, error) {
	activities, err := as.repo.List(ctx)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activities, nil
}

func (as *ActivitiesService) Get(ctx context.Context, id string) (*entity.Activity, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errorvalues.ErrActivityNotFound
	}
	activity, err := as.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, repoError(err)
	}
	return activity, nil
}

func (as *ActivitiesService) Create(ctx context.Context, draft *entity.ActivityDraft) (*entity.Activity, error) {
	if err := validation.Struct(draft); err != nil {
		return nil, err
	}
	activity := entity.Activity{
		Type:           draft.Type,
		Duration:       draft.Duration,
		CaloriesBurned: draft.CaloriesBurned,
	}
	if err := as.repo.Create(ctx, &activity); err != nil {
		return nil, repoError(err)
	}
	return &activity, nil
}

func (as *ActivitiesService) Update(ctx context.Context, id string, draft *entity.ActivityDraft) (*entity.Activity, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errorvalues.ErrActivityNotFound
	}
	if err = validation.Struct(draft); err != nil {
		return nil, err
	}
	activity := entity.Activity{
		ID:             uid.String(),
		Type:           draft.Type,
		Duration:       draft.Duration,
		CaloriesBurned: draft.CaloriesBurned,
	}
	if err = as.repo.Update(ctx, &activity); err != nil {
		return nil, repoError(err)
	}
	return &activity, nil
}

func (as *ActivitiesService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return errorvalues.ErrActivityNotFound
	}
	if err = as.repo.Delete(ctx, uid); err != nil {
		return repoError(err)
	}
	return nil
}

// repoError passes not found and validation errors through, hiding the rest
func repoError(err error) error {
	if errors.Is(err, errorvalues.ErrNotFound) || errors.Is(err, errorvalues.ErrValidation) {
		return err
	}
	return errors.New("repository error: " + err.Error())
}
