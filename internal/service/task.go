package service

import (
	"context"
	"strings"

	"taskhub/internal/core/apperr"
	"taskhub/internal/domain"
)

type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type TaskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, ownerID uint, in CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.Validation("title is required")
	}
	status := domain.TaskStatusDefault
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		status = *in.Status
	}

	t := &domain.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: in.Description,
		Status:      status,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apperr.Internal("create task failed", err)
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context, ownerID uint) ([]domain.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal("list tasks failed", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Get 不存在与非本人统一 not found，不向非属主泄露存在性
func (s *TaskService) Get(ctx context.Context, ownerID, id uint) (*domain.Task, error) {
	t, err := s.repo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, apperr.Internal("get task failed", err)
	}
	if t == nil {
		return nil, apperr.NotFound("task not found")
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, id uint, in UpdateTaskInput) (*domain.Task, error) {
	fields := map[string]any{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, apperr.Validation("title must not be empty")
		}
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("at least one of title, description, status is required")
	}

	n, err := s.repo.UpdateByOwner(ctx, ownerID, id, fields)
	if err != nil {
		return nil, apperr.Internal("update task failed", err)
	}
	if n == 0 {
		return nil, apperr.NotFound("task not found")
	}
	return s.Get(ctx, ownerID, id)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id uint) error {
	n, err := s.repo.DeleteByOwner(ctx, ownerID, id)
	if err != nil {
		return apperr.Internal("delete task failed", err)
	}
	if n == 0 {
		return apperr.NotFound("task not found")
	}
	return nil
}
