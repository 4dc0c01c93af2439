package stock

import (
	"database/sql"

	"gorm.io/gorm"

	"warehouse.GO/model/entity"
)

type StockRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewStockRepository(db *gorm.DB) (*StockRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &StockRepository{db: db, sqlDB: sqlDB}, nil
}

// GetQuantity returns the on-hand quantity for an article.
// Uses raw SQL for minimal overhead.
func (r *StockRepository) GetQuantity(article uint) (int, bool) {
	const query = `SELECT quantity FROM stock WHERE article = ? LIMIT 1`
	var qty sql.NullInt64
	if err := r.sqlDB.QueryRow(query, article).Scan(&qty); err != nil || !qty.Valid {
		return 0, false
	}
	return int(qty.Int64), true
}

// FindByArticle returns the full entity using GORM.
func (r *StockRepository) FindByArticle(article uint) (*entity.Stock, error) {
	var item entity.Stock
	err := r.db.Preload("Category").First(&item, "article = ?", article).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByName returns the stock item with the given display name.
func (r *StockRepository) FindByName(name string) (*entity.Stock, error) {
	var item entity.Stock
	err := r.db.First(&item, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns a page of stock items ordered by article.
func (r *StockRepository) List(page, pageSize int) ([]entity.Stock, error) {
	if pageSize <= 0 {
		pageSize = 50
	}
	if page <= 0 {
		page = 1
	}
	var items []entity.Stock
	err := r.db.Order("article").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, err
}

// ListByCategoryIDs returns all stock items in the given categories.
func (r *StockRepository) ListByCategoryIDs(ids []uint) ([]entity.Stock, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []entity.Stock
	err := r.db.Where("category_id IN ?", ids).Order("article").Find(&items).Error
	return items, err
}

// ListBelowQuantity returns items whose quantity is at or below the threshold.
func (r *StockRepository) ListBelowQuantity(threshold int) ([]entity.Stock, error) {
	var items []entity.Stock
	err := r.db.Where("quantity <= ?", threshold).Order("quantity").Find(&items).Error
	return items, err
}

func (r *StockRepository) Create(item *entity.Stock) error {
	return r.db.Create(item).Error
}

func (r *StockRepository) Update(item *entity.Stock) error {
	return r.db.Save(item).Error
}

func (r *StockRepository) Delete(article uint) error {
	return r.db.Delete(&entity.Stock{}, "article = ?", article).Error
}
