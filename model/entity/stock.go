package entity

import (
	"github.com/shopspring/decimal"
)

// Stock represents one warehouse item. The article code is assigned by
// staff and serves as the primary key; quantity is the authoritative
// on-hand count and is mutated only by cargo/shipment lifecycle code.
type Stock struct {
	Article    uint            `gorm:"column:article;primaryKey;autoIncrement:false" json:"article"`
	Name       string          `gorm:"column:name;type:varchar(80);not null" json:"name"`
	Price      decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null;default:0" json:"price"`
	Quantity   int             `gorm:"column:quantity;not null;default:0" json:"quantity"`
	CategoryID *uint           `gorm:"column:category_id" json:"category_id,omitempty"`
	Category   *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (Stock) TableName() string {
	return "stock"
}

func (s Stock) String() string {
	return s.Name
}
