package customer

import (
	"gorm.io/gorm"

	"warehouse.GO/model/entity"
	customerRepo "warehouse.GO/model/repository/customer"
	actionlogService "warehouse.GO/service/actionlog"
)

// CustomerInput is the payload for creating or updating a customer.
type CustomerInput struct {
	FullName    string `json:"full_name" validate:"required,max=80"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	Email       string `json:"email" validate:"required,email"`
	ContactInfo string `json:"contact_info"`
}

type CustomerService struct {
	db   *gorm.DB
	repo *customerRepo.CustomerRepository
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db, repo: customerRepo.NewCustomerRepository(db)}
}

func (s *CustomerService) apply(c *entity.Customer, in CustomerInput) {
	c.FullName = in.FullName
	c.PhoneNumber = in.PhoneNumber
	c.Email = in.Email
	if in.ContactInfo != "" {
		ci := in.ContactInfo
		c.ContactInfo = &ci
	} else {
		c.ContactInfo = nil
	}
}

func (s *CustomerService) Create(in CustomerInput) (*entity.Customer, error) {
	c := &entity.Customer{}
	s.apply(c, in)
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	actionlogService.Record(s.db, entity.Customer{}.TableName(), c.String(), entity.ActionCreate)
	return c, nil
}

func (s *CustomerService) Update(id uint, in CustomerInput) (*entity.Customer, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.apply(c, in)
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	actionlogService.Record(s.db, entity.Customer{}.TableName(), c.String(), entity.ActionUpdate)
	return c, nil
}

func (s *CustomerService) Delete(id uint) error {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	actionlogService.Record(s.db, entity.Customer{}.TableName(), c.String(), entity.ActionDelete)
	return nil
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	return s.repo.FindByID(id)
}

func (s *CustomerService) List() ([]entity.Customer, error) {
	return s.repo.FindAll()
}
