package entity

// Category classifies stock items. Categories form a forest: a category
// has zero or one parent.
type Category struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"column:name;type:varchar(80);not null;uniqueIndex" json:"name"`
	ParentID *uint     `gorm:"column:parent_id" json:"parent_id,omitempty"`
	Parent   *Category `gorm:"foreignKey:ParentID" json:"-"`
}

func (Category) TableName() string {
	return "category"
}

func (c Category) String() string {
	return c.Name
}
