package supplier

import (
	"gorm.io/gorm"

	"warehouse.GO/model/entity"
	supplierRepo "warehouse.GO/model/repository/supplier"
	actionlogService "warehouse.GO/service/actionlog"
)

// SupplierInput is the payload for creating or updating a supplier.
type SupplierInput struct {
	Organization string `json:"organization" validate:"required,max=80"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number" validate:"max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	LegalDetails string `json:"legal_details"`
	ContactInfo  string `json:"contact_info"`
	CategoryIDs  []uint `json:"category_ids"`
}

type SupplierService struct {
	db   *gorm.DB
	repo *supplierRepo.SupplierRepository
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db, repo: supplierRepo.NewSupplierRepository(db)}
}

func (s *SupplierService) apply(sup *entity.Supplier, in SupplierInput) {
	sup.Organization = in.Organization
	sup.Address = in.Address
	sup.PhoneNumber = in.PhoneNumber
	sup.Email = in.Email
	sup.LegalDetails = in.LegalDetails
	if in.ContactInfo != "" {
		ci := in.ContactInfo
		sup.ContactInfo = &ci
	} else {
		sup.ContactInfo = nil
	}
}

func (s *SupplierService) Create(in SupplierInput) (*entity.Supplier, error) {
	sup := &entity.Supplier{}
	s.apply(sup, in)
	if err := s.repo.Create(sup); err != nil {
		return nil, err
	}
	if len(in.CategoryIDs) > 0 {
		if err := s.repo.ReplaceCategories(sup.ID, in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	actionlogService.Record(s.db, entity.Supplier{}.TableName(), sup.String(), entity.ActionCreate)
	return sup, nil
}

func (s *SupplierService) Update(id uint, in SupplierInput) (*entity.Supplier, error) {
	sup, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.apply(sup, in)
	if err := s.repo.Update(sup); err != nil {
		return nil, err
	}
	if in.CategoryIDs != nil {
		if err := s.repo.ReplaceCategories(sup.ID, in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	actionlogService.Record(s.db, entity.Supplier{}.TableName(), sup.String(), entity.ActionUpdate)
	return sup, nil
}

func (s *SupplierService) Delete(id uint) error {
	sup, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	actionlogService.Record(s.db, entity.Supplier{}.TableName(), sup.String(), entity.ActionDelete)
	return nil
}

func (s *SupplierService) Get(id uint) (*entity.Supplier, error) {
	return s.repo.FindByID(id)
}

func (s *SupplierService) List() ([]entity.Supplier, error) {
	return s.repo.FindAll()
}
