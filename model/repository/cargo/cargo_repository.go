package cargo

import (
	"database/sql"

	"gorm.io/gorm"

	"warehouse.GO/model/entity"
)

type CargoRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewCargoRepository(db *gorm.DB) (*CargoRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &CargoRepository{db: db, sqlDB: sqlDB}, nil
}

func (r *CargoRepository) FindByID(id uint) (*entity.Cargo, error) {
	var c entity.Cargo
	err := r.db.Preload("Supplier").Preload("Lines").Preload("Lines.Stock").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CargoRepository) List(page, pageSize int) ([]entity.Cargo, error) {
	if pageSize <= 0 {
		pageSize = 50
	}
	if page <= 0 {
		page = 1
	}
	var list []entity.Cargo
	err := r.db.Preload("Supplier").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	return list, err
}

// Total returns the monetary value of a cargo (sum of price * quantity).
// Uses raw SQL for minimal overhead.
func (r *CargoRepository) Total(id uint) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(s.price * cs.quantity), 0)
		FROM cargo_stock cs
		JOIN stock s ON s.article = cs.stock_article
		WHERE cs.cargo_id = ?`
	var total float64
	err := r.sqlDB.QueryRow(query, id).Scan(&total)
	return total, err
}
