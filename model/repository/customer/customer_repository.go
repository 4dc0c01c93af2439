package customer

import (
	"gorm.io/gorm"

	"warehouse.GO/model/entity"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindAll() ([]entity.Customer, error) {
	var list []entity.Customer
	err := r.db.Order("full_name").Find(&list).Error
	return list, err
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	return r.db.Save(c).Error
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Customer{}, id).Error
}
