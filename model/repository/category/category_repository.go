package category

import (
	"gorm.io/gorm"

	"warehouse.GO/core/cache"
	"warehouse.GO/model/entity"
)

const cacheTag = "category_tree"

type CategoryRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db, cache: cache.GetInstance()}
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.db.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.db.Order("name").Find(&cats).Error
	return cats, err
}

// Children returns the direct children of a category (root nodes for id 0).
func (r *CategoryRepository) Children(id uint) ([]entity.Category, error) {
	var cats []entity.Category
	q := r.db.Order("name")
	if id == 0 {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", id)
	}
	err := q.Find(&cats).Error
	return cats, err
}

// DescendantIDs returns the IDs of a category's whole subtree, the
// category itself included. The walk over the adjacency list is done
// breadth-first in memory and cached until the tree changes.
func (r *CategoryRepository) DescendantIDs(id uint) ([]uint, error) {
	if v, ok := r.cache.GetN("category_descendants", id); ok {
		return v.([]uint), nil
	}

	type row struct {
		ID       uint
		ParentID *uint
	}
	var rows []row
	if err := r.db.Model(&entity.Category{}).Select("id", "parent_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	children := make(map[uint][]uint, len(rows))
	for _, c := range rows {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	ids := []uint{id}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}

	r.cache.SetN([]interface{}{"category_descendants", id}, ids, 0, []string{cacheTag})
	return ids, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	if err := r.db.Create(cat).Error; err != nil {
		return err
	}
	r.cache.DeleteByTag(cacheTag)
	return nil
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	if err := r.db.Save(cat).Error; err != nil {
		return err
	}
	r.cache.DeleteByTag(cacheTag)
	return nil
}

// Delete removes a category. Children are re-parented to the deleted
// node's parent so the forest stays connected.
func (r *CategoryRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cat entity.Category
		if err := tx.First(&cat, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Category{}).
			Where("parent_id = ?", id).
			Update("parent_id", cat.ParentID).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
	if err != nil {
		return err
	}
	r.cache.DeleteByTag(cacheTag)
	return nil
}
