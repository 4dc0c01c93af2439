package actionlog

import (
	"gorm.io/gorm"

	"warehouse.GO/model/entity"
)

type ActionLogRepository struct {
	db *gorm.DB
}

func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

// Append writes one entry. Entries are never updated or deleted.
func (r *ActionLogRepository) Append(e *entity.ActionLogEntry) error {
	return r.db.Create(e).Error
}

func (r *ActionLogRepository) List(page, pageSize int) ([]entity.ActionLogEntry, error) {
	if pageSize <= 0 {
		pageSize = 100
	}
	if page <= 0 {
		page = 1
	}
	var list []entity.ActionLogEntry
	err := r.db.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	return list, err
}

func (r *ActionLogRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entity.ActionLogEntry{}).Count(&n).Error
	return n, err
}
