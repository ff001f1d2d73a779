package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/httputil"
	"github.com/limbo/fitfusion/pkg/validation"
)

const serviceTimeout = time.Second * 10

type DeletedResponse struct {
	ID string `json:"_id"`
}

// @Summary List activities
// @Tags activities
// @Produce json
// @Success 200 {object} httputil.Envelope[[]entity.Activity]
// @Failure 500 {object} httputil.ErrorResponse
// @Router /activities [get]
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	activities, err := s.activitiesService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "list activities", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, activities)
}

// @Summary Get activity
// @Tags activities
// @Produce json
// @Param id path string true "Resource UUID"
// @Success 200 {object} httputil.Envelope[entity.Activity]
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /activities/{id} [get]
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	activity, err := s.activitiesService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "get activity", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, activity)
}

// @Summary Create activity
// @Tags activities
// @Accept json
// @Produce json
// @Param draft body entity.ActivityDraft true "Draft"
// @Success 201 {object} httputil.Envelope[entity.Activity]
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /activities [post]
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var draft entity.ActivityDraft
	if !decodeBody(w, r, logger, "create activity", &draft) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	activity, err := s.activitiesService.Create(ctx, &draft)
	if err != nil {
		writeServiceError(w, logger, "create activity", err)
		return
	}
	httputil.WriteData(w, http.StatusCreated, activity)
	logger.Info("activity created", slog.String("id", activity.ID))
}

// @Summary Update activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Resource UUID"
// @Param draft body entity.ActivityDraft true "Draft"
// @Success 200 {object} httputil.Envelope[entity.Activity]
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /activities/{id} [put]
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var draft entity.ActivityDraft
	if !decodeBody(w, r, logger, "update activity", &draft) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	activity, err := s.activitiesService.Update(ctx, chi.URLParam(r, "id"), &draft)
	if err != nil {
		writeServiceError(w, logger, "update activity", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, activity)
	logger.Info("activity updated", slog.String("id", activity.ID))
}

// @Summary Delete activity
// @Tags activities
// @Produce json
// @Param id path string true "Resource UUID"
// @Success 200 {object} httputil.Envelope[DeletedResponse]
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /activities/{id} [delete]
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	if err := s.activitiesService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete activity", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, DeletedResponse{ID: id})
	logger.Info("activity deleted", slog.String("id", id))
}

// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {object} httputil.Envelope[[]entity.Goal]
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goals [get]
func (s *Server) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	goals, err := s.goalsService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "list goals", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, goals)
}

// @Summary Get goal
// @Tags goals
// @Produce json
// @Param id path string true "Resource UUID"
// @Success 200 {object} httputil.Envelope[entity.Goal]
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goals/{id} [get]
func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	goal, err := s.goalsService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, goal)
}

// @Summary Create goal
// @Tags goals
// @Accept json
// @Produce json
// @Param draft body entity.GoalDraft true "Draft"
// @Success 201 {object} httputil.Envelope[entity.Goal]
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goals [post]
func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var draft entity.GoalDraft
	if !decodeBody(w, r, logger, "create goal", &draft) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	goal, err := s.goalsService.Create(ctx, &draft)
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteData(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.String("id", goal.ID))
}

// @Summary Update goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Resource UUID"
// @Param draft body entity.GoalDraft true "Draft"
// @Success 200 {object} httputil.Envelope[entity.Goal]
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goals/{id} [put]
func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var draft entity.GoalDraft
	if !decodeBody(w, r, logger, "update goal", &draft) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	goal, err := s.goalsService.Update(ctx, chi.URLParam(r, "id"), &draft)
	if err != nil {
		writeServiceError(w, logger, "update goal", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, goal)
	logger.Info("goal updated", slog.String("id", goal.ID), slog.Bool("completed", goal.Completed))
}

// @Summary Delete goal
// @Tags goals
// @Produce json
// @Param id path string true "Resource UUID"
// @Success 200 {object} httputil.Envelope[DeletedResponse]
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goals/{id} [delete]
func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	if err := s.goalsService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete goal", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, DeletedResponse{ID: id})
	logger.Info("goal deleted", slog.String("id", id))
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, v any) bool {
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
	if err != nil {
		logger.Error(op+" error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		msgs := validation.Messages(err)
		logger.Error(op+" error: validation failed", slog.Any("details", msgs))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, strings.Join(msgs, "; "), msgs...)
	case errors.Is(err, errorvalues.ErrNotFound):
		logger.Error(op + " error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op)
	}
}
