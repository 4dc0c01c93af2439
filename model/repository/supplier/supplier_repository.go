package supplier

import (
	"gorm.io/gorm"

	"warehouse.GO/model/entity"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) FindByID(id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.db.Preload("Categories").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) FindAll() ([]entity.Supplier, error) {
	var list []entity.Supplier
	err := r.db.Order("organization").Find(&list).Error
	return list, err
}

func (r *SupplierRepository) Create(s *entity.Supplier) error {
	return r.db.Create(s).Error
}

func (r *SupplierRepository) Update(s *entity.Supplier) error {
	return r.db.Omit("Categories").Save(s).Error
}

func (r *SupplierRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.SupplierCategory{}, "supplier_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Supplier{}, id).Error
	})
}

// ReplaceCategories rewrites the supplier's category set. Each pair is
// stored once; the unique index backs this up at the storage layer.
func (r *SupplierRepository) ReplaceCategories(supplierID uint, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.SupplierCategory{}, "supplier_id = ?", supplierID).Error; err != nil {
			return err
		}
		seen := make(map[uint]bool, len(categoryIDs))
		for _, cid := range categoryIDs {
			if seen[cid] {
				continue
			}
			seen[cid] = true
			row := entity.SupplierCategory{SupplierID: supplierID, CategoryID: cid}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
