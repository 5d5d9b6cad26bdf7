package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskhub/internal/core/apperr"
	"taskhub/internal/domain"
	"taskhub/internal/service"
	resp "taskhub/internal/transport/http/response"
)

type TaskAPI interface {
	Create(ctx context.Context, ownerID uint, in service.CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, ownerID uint) ([]domain.Task, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.Task, error)
	Update(ctx context.Context, ownerID, id uint, in service.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type TaskHandler struct{ svc TaskAPI }

func NewTaskHandler(svc TaskAPI) *TaskHandler { return &TaskHandler{svc: svc} }

// taskID 非数字 id 与不存在等价，不区分
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperr.NotFound("task not found"))
		return 0, false
	}
	return uint(id), true
}

func (h *TaskHandler) Create(c *gin.Context) {
	var in service.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	t, err := h.svc.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(gin.H{"task": t}))
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.svc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"tasks": tasks}))
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"task": t}))
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var in service.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	t, err := h.svc.Update(c.Request.Context(), currentUserID(c), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"task": t}))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"message": "task deleted"}))
}
