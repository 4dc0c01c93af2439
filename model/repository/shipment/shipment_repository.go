package shipment

import (
	"database/sql"

	"gorm.io/gorm"

	"warehouse.GO/model/entity"
)

type ShipmentRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewShipmentRepository(db *gorm.DB) (*ShipmentRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &ShipmentRepository{db: db, sqlDB: sqlDB}, nil
}

func (r *ShipmentRepository) FindByID(id uint) (*entity.Shipment, error) {
	var s entity.Shipment
	err := r.db.Preload("Customer").Preload("Lines").Preload("Lines.Stock").First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepository) FindByToken(token string) (*entity.Shipment, error) {
	var s entity.Shipment
	err := r.db.Preload("Customer").First(&s, "confirmation_token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepository) List(page, pageSize int) ([]entity.Shipment, error) {
	if pageSize <= 0 {
		pageSize = 50
	}
	if page <= 0 {
		page = 1
	}
	var list []entity.Shipment
	err := r.db.Preload("Customer").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	return list, err
}

// ListPendingNotification returns SENT shipments whose confirmation email
// has not gone out yet. Used by the notification retry job.
func (r *ShipmentRepository) ListPendingNotification() ([]entity.Shipment, error) {
	var list []entity.Shipment
	err := r.db.Preload("Customer").
		Where("status = ? AND notified_at IS NULL", entity.ShipmentSent).
		Find(&list).Error
	return list, err
}

// Total returns the monetary value of a shipment (sum of price * quantity).
// Uses raw SQL for minimal overhead.
func (r *ShipmentRepository) Total(id uint) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(s.price * ss.quantity), 0)
		FROM shipment_stock ss
		JOIN stock s ON s.article = ss.stock_article
		WHERE ss.shipment_id = ?`
	var total float64
	err := r.sqlDB.QueryRow(query, id).Scan(&total)
	return total, err
}
