package stock

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse.GO/model/entity"
	categoryRepo "warehouse.GO/model/repository/category"
	stockRepo "warehouse.GO/model/repository/stock"
)

var (
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// StockInput is the payload for creating or updating a stock item.
type StockInput struct {
	Article    uint   `json:"article" validate:"required"`
	Name       string `json:"name" validate:"required,max=80"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
	CategoryID *uint  `json:"category_id"`
}

type StockService struct {
	db   *gorm.DB
	repo *stockRepo.StockRepository
}

func NewStockService(db *gorm.DB) (*StockService, error) {
	repo, err := stockRepo.NewStockRepository(db)
	if err != nil {
		return nil, err
	}
	return &StockService{db: db, repo: repo}, nil
}

func (s *StockService) toEntity(in StockInput) (*entity.Stock, error) {
	price := decimal.Zero
	if in.Price != "" {
		var err error
		price, err = decimal.NewFromString(in.Price)
		if err != nil {
			return nil, err
		}
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if in.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return &entity.Stock{
		Article:    in.Article,
		Name:       in.Name,
		Price:      price,
		Quantity:   in.Quantity,
		CategoryID: in.CategoryID,
	}, nil
}

func (s *StockService) Create(in StockInput) (*entity.Stock, error) {
	item, err := s.toEntity(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *StockService) Update(in StockInput) (*entity.Stock, error) {
	if _, err := s.repo.FindByArticle(in.Article); err != nil {
		return nil, err
	}
	item, err := s.toEntity(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *StockService) Delete(article uint) error {
	return s.repo.Delete(article)
}

func (s *StockService) Get(article uint) (*entity.Stock, error) {
	return s.repo.FindByArticle(article)
}

func (s *StockService) List(page, pageSize int) ([]entity.Stock, error) {
	return s.repo.List(page, pageSize)
}

// ListByCategory returns the items of a category subtree.
func (s *StockService) ListByCategory(categoryID uint) ([]entity.Stock, error) {
	ids, err := categoryRepo.NewCategoryRepository(s.db).DescendantIDs(categoryID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCategoryIDs(ids)
}
