package category

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse.GO/model/entity"
	categoryRepo "warehouse.GO/model/repository/category"
	stockRepo "warehouse.GO/model/repository/stock"
)

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name     string `json:"name" validate:"required,max=80"`
	ParentID *uint  `json:"parent_id"`
}

// Node is one category with its children, for tree responses.
type Node struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Children []Node `json:"children,omitempty"`
}

type CategoryService struct {
	db   *gorm.DB
	repo *categoryRepo.CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db, repo: categoryRepo.NewCategoryRepository(db)}
}

func (s *CategoryService) Create(in CategoryInput) (*entity.Category, error) {
	cat := &entity.Category{Name: in.Name, ParentID: in.ParentID}
	if err := s.repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Update(id uint, in CategoryInput) (*entity.Category, error) {
	cat, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	cat.Name = in.Name
	cat.ParentID = in.ParentID
	if err := s.repo.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	return s.repo.FindByID(id)
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.repo.FindAll()
}

// Tree returns the whole category forest as nested nodes.
func (s *CategoryService) Tree() ([]Node, error) {
	cats, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	children := make(map[uint][]entity.Category)
	var roots []entity.Category
	for _, c := range cats {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}
	var build func(c entity.Category) Node
	build = func(c entity.Category) Node {
		n := Node{ID: c.ID, Name: c.Name}
		for _, child := range children[c.ID] {
			n.Children = append(n.Children, build(child))
		}
		return n
	}
	nodes := make([]Node, 0, len(roots))
	for _, r := range roots {
		nodes = append(nodes, build(r))
	}
	return nodes, nil
}

// SubtreeValue sums price * quantity over a category subtree; id 0 means
// the whole warehouse.
func (s *CategoryService) SubtreeValue(id uint) (decimal.Decimal, error) {
	sr, err := stockRepo.NewStockRepository(s.db)
	if err != nil {
		return decimal.Zero, err
	}

	var items []entity.Stock
	if id == 0 {
		err = s.db.Find(&items).Error
	} else {
		var ids []uint
		ids, err = s.repo.DescendantIDs(id)
		if err == nil {
			items, err = sr.ListByCategoryIDs(ids)
		}
	}
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total, nil
}
