package domain

import (
	"context"
	"time"
)

const TaskStatusDefault = "pending"

type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"index;not null" json:"ownerId"`
	Owner       User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:191;not null" json:"title"`
	Description *string   `gorm:"size:1024" json:"description"`
	Status      string    `gorm:"size:32;not null;default:pending" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Task) TableName() string { return "tasks" }

// TaskRepository 所有读写都按 owner 过滤，跨租户隔离只靠这一层
type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	ListByOwner(ctx context.Context, ownerID uint) ([]Task, error)
	FindByOwner(ctx context.Context, ownerID, id uint) (*Task, error)
	UpdateByOwner(ctx context.Context, ownerID, id uint, fields map[string]any) (int64, error)
	DeleteByOwner(ctx context.Context, ownerID, id uint) (int64, error)
}
