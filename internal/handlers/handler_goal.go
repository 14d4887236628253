package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// GoalHandler handles financial goal requests.
type GoalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(gs portssvc.GoalSvcFacade) *GoalHandler {
	return &GoalHandler{goalService: gs}
}

func registerGoalRoutes(rg *gin.RouterGroup, gs portssvc.GoalSvcFacade) {
	h := NewGoalHandler(gs)

	goals := rg.Group("/goals")
	{
		goals.GET("", h.ListGoals)
		goals.POST("", h.CreateGoal)
		goals.PUT("/:id", h.UpdateGoal)
		goals.DELETE("/:id", h.DeleteGoal)
		goals.GET("/:id/progress", h.GetGoalProgress)
	}
}

// ListGoals godoc
// @Summary List goals
// @Description Lists all goals, most recent start date first.
// @Tags goals
// @Produce json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} ErrorResponse
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: dto.ToGoalResponses(goals)})
}

// CreateGoal godoc
// @Summary Create goal
// @Description Creates a revenue or expense cap goal over a date range.
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToGoalResponse(goal)
	c.JSON(http.StatusCreated, resp)
}

// UpdateGoal godoc
// @Summary Update goal
// @Description Updates a goal's target amount or date range.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToGoalResponse(goal)
	c.JSON(http.StatusOK, resp)
}

// DeleteGoal godoc
// @Summary Delete goal
// @Description Deletes a goal. Historical transactions are untouched.
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGoalProgress godoc
// @Summary Get goal progress
// @Description Returns progress for the goal's period containing the reference date (today by default).
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.GoalProgressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id}/progress [get]
func (h *GoalHandler) GetGoalProgress(c *gin.Context) {
	ref := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, apperrors.NewAppError(http.StatusBadRequest, "asOf must be in YYYY-MM-DD format", err))
			return
		}
		ref = parsed
	}

	progress, err := h.goalService.GetGoalProgress(c.Request.Context(), c.Param("id"), ref)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToGoalProgressResponse(progress)
	c.JSON(http.StatusOK, resp)
}
