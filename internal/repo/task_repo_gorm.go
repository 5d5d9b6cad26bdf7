package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskhub/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepo) FindByOwner(ctx context.Context, ownerID, id uint) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).
		First(&t, "id = ? AND owner_id = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

// UpdateByOwner 按 (id, owner) 双条件更新，RowsAffected=0 即不存在或非本人
func (r *TaskRepo) UpdateByOwner(ctx context.Context, ownerID, id uint, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *TaskRepo) DeleteByOwner(ctx context.Context, ownerID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
