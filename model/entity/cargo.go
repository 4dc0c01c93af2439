package entity

import (
	"fmt"
	"time"
)

// CargoStatus is the lifecycle state of an incoming delivery.
type CargoStatus string

const (
	CargoInTransit CargoStatus = "IN_TRANSIT"
	CargoDone      CargoStatus = "DONE"
)

// Cargo is an incoming delivery from a supplier. Stock is increased only
// when the cargo is confirmed (IN_TRANSIT -> DONE).
type Cargo struct {
	ID         uint         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SupplierID uint         `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	Supplier   *Supplier    `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Status     CargoStatus  `gorm:"column:status;type:varchar(10);not null;default:IN_TRANSIT" json:"status"`
	CreatedAt  time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Lines      []CargoStock `gorm:"foreignKey:CargoID" json:"lines,omitempty"`
}

func (Cargo) TableName() string {
	return "cargo"
}

func (c Cargo) String() string {
	supplier := fmt.Sprintf("supplier %d", c.SupplierID)
	if c.Supplier != nil {
		supplier = c.Supplier.Organization
	}
	return fmt.Sprintf("%d, %s, %s, %s", c.ID, supplier, c.Status,
		c.CreatedAt.Format("2006-01-02 15:04:05"))
}

// CargoStock is a cargo line: one stock item with quantity.
// The (cargo, stock) pair is unique.
type CargoStock struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CargoID      uint   `gorm:"column:cargo_id;not null;uniqueIndex:idx_cargo_stock_unq" json:"cargo_id"`
	StockArticle uint   `gorm:"column:stock_article;not null;uniqueIndex:idx_cargo_stock_unq" json:"stock_article"`
	Stock        *Stock `gorm:"foreignKey:StockArticle;references:Article" json:"stock,omitempty"`
	Quantity     int    `gorm:"column:quantity;not null" json:"quantity"`
}

func (CargoStock) TableName() string {
	return "cargo_stock"
}

func (cs CargoStock) String() string {
	return fmt.Sprintf("cargo: %d, article: %d, quantity: %d",
		cs.CargoID, cs.StockArticle, cs.Quantity)
}
