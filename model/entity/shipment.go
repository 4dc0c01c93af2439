package entity

import (
	"fmt"
	"strings"
	"time"
)

// ShipmentStatus is the lifecycle state of an outgoing order.
type ShipmentStatus string

const (
	ShipmentCreated   ShipmentStatus = "CREATED"
	ShipmentSent      ShipmentStatus = "SENT"
	ShipmentDone      ShipmentStatus = "DONE"
	ShipmentCancelled ShipmentStatus = "CANCELLED"
)

// Shipment is an outgoing order to a customer. Stock is reserved
// (decremented) when the shipment is approved (CREATED -> SENT) and
// restored if a SENT shipment is cancelled. The confirmation token is set
// on approval and redeemed once by the customer to finalize delivery.
type Shipment struct {
	ID                uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID        uint            `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Customer          *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status            ShipmentStatus  `gorm:"column:status;type:varchar(10);not null;default:CREATED" json:"status"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ConfirmationToken *string         `gorm:"column:confirmation_token;type:varchar(50);uniqueIndex" json:"confirmation_token,omitempty"`
	NotifiedAt        *time.Time      `gorm:"column:notified_at" json:"notified_at,omitempty"`
	Lines             []ShipmentStock `gorm:"foreignKey:ShipmentID" json:"lines,omitempty"`
}

func (Shipment) TableName() string {
	return "shipment"
}

func (s Shipment) String() string {
	customer := fmt.Sprintf("customer %d", s.CustomerID)
	if s.Customer != nil {
		customer = s.Customer.FullName
	}
	return fmt.Sprintf("%s, %s, %s", s.CreatedAt.Format("2006-01-02 15:04:05"),
		customer, strings.ToLower(string(s.Status)))
}

// ShipmentStock is a shipment line: one stock item with quantity.
// The (shipment, stock) pair is unique.
type ShipmentStock struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ShipmentID   uint   `gorm:"column:shipment_id;not null;uniqueIndex:idx_shipment_stock_unq" json:"shipment_id"`
	StockArticle uint   `gorm:"column:stock_article;not null;uniqueIndex:idx_shipment_stock_unq" json:"stock_article"`
	Stock        *Stock `gorm:"foreignKey:StockArticle;references:Article" json:"stock,omitempty"`
	Quantity     int    `gorm:"column:quantity;not null" json:"quantity"`
}

func (ShipmentStock) TableName() string {
	return "shipment_stock"
}

func (ss ShipmentStock) String() string {
	return fmt.Sprintf("shipment: %d, article: %d, quantity: %d",
		ss.ShipmentID, ss.StockArticle, ss.Quantity)
}
