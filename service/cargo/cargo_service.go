package cargo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warehouse.GO/model/entity"
	cargoRepo "warehouse.GO/model/repository/cargo"
	actionlogService "warehouse.GO/service/actionlog"
	stockService "warehouse.GO/service/stock"
)

var (
	ErrCargoNotFound = errors.New("cargo not found")
	ErrNoLines       = errors.New("cargo needs at least one line")
)

// LineInput is one (article, quantity) pair in a cargo registration.
type LineInput struct {
	Article  uint `json:"article" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

type CargoService struct {
	db   *gorm.DB
	repo *cargoRepo.CargoRepository
}

func NewCargoService(db *gorm.DB) (*CargoService, error) {
	repo, err := cargoRepo.NewCargoRepository(db)
	if err != nil {
		return nil, err
	}
	return &CargoService{db: db, repo: repo}, nil
}

// coalesceLines merges duplicate articles by summing their quantities,
// preserving first-seen order.
func coalesceLines(lines []LineInput) []LineInput {
	index := make(map[uint]int, len(lines))
	out := make([]LineInput, 0, len(lines))
	for _, l := range lines {
		if i, ok := index[l.Article]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.Article] = len(out)
		out = append(out, l)
	}
	return out
}

// Create registers an incoming delivery with its line set. Stock is not
// touched here; that happens on Confirm.
func (s *CargoService) Create(supplierID uint, lines []LineInput) (*entity.Cargo, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	lines = coalesceLines(lines)

	var cargo *entity.Cargo
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var supplier entity.Supplier
		if err := tx.First(&supplier, supplierID).Error; err != nil {
			return fmt.Errorf("supplier %d: %w", supplierID, err)
		}

		cargo = &entity.Cargo{SupplierID: supplierID, Status: entity.CargoInTransit}
		if err := tx.Create(cargo).Error; err != nil {
			return err
		}
		for _, l := range lines {
			var st entity.Stock
			if err := tx.First(&st, "article = ?", l.Article).Error; err != nil {
				return fmt.Errorf("article %d: %w", l.Article, err)
			}
			row := entity.CargoStock{CargoID: cargo.ID, StockArticle: l.Article, Quantity: l.Quantity}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			cargo.Lines = append(cargo.Lines, row)
		}
		cargo.Supplier = &supplier
		return nil
	})
	if err != nil {
		return nil, err
	}

	actionlogService.Record(s.db, entity.Cargo{}.TableName(), cargo.String(), entity.ActionCreate)
	for _, l := range cargo.Lines {
		actionlogService.Record(s.db, entity.CargoStock{}.TableName(), l.String(), entity.ActionCreate)
	}
	return cargo, nil
}

// Confirm transitions IN_TRANSIT -> DONE and increases stock for every
// line. The transition is guarded by a conditional update, so confirming
// an already-DONE cargo changes nothing (idempotent confirm).
func (s *CargoService) Confirm(id uint) (*entity.Cargo, error) {
	var confirmed bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Cargo{}).
			Where("id = ? AND status = ?", id, entity.CargoInTransit).
			Update("status", entity.CargoDone)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already DONE, or no such cargo: resolved below.
			return nil
		}
		confirmed = true

		var lines []entity.CargoStock
		if err := tx.Find(&lines, "cargo_id = ?", id).Error; err != nil {
			return err
		}
		for _, l := range lines {
			if err := stockService.Increase(tx, l.StockArticle, l.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cargo, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCargoNotFound
		}
		return nil, err
	}
	if confirmed {
		actionlogService.Record(s.db, entity.Cargo{}.TableName(), cargo.String(), entity.ActionUpdate)
	}
	return cargo, nil
}

func (s *CargoService) Get(id uint) (*entity.Cargo, error) {
	cargo, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCargoNotFound
		}
		return nil, err
	}
	return cargo, nil
}

func (s *CargoService) List(page, pageSize int) ([]entity.Cargo, error) {
	return s.repo.List(page, pageSize)
}

// Total returns the monetary value of a cargo.
func (s *CargoService) Total(id uint) (float64, error) {
	return s.repo.Total(id)
}
