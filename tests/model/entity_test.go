package modeltest

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	entity "warehouse.GO/model/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(entity.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEntity_StockString(t *testing.T) {
	s := entity.Stock{Article: 7, Name: "Bolt M8", Price: decimal.NewFromInt(3)}
	if s.String() != "Bolt M8" {
		t.Errorf("Stock.String() = %q, want %q", s.String(), "Bolt M8")
	}
}

func TestEntity_ShipmentString(t *testing.T) {
	created := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	sh := entity.Shipment{
		Status:    entity.ShipmentSent,
		CreatedAt: created,
		Customer:  &entity.Customer{FullName: "Jane Roe"},
	}
	got := sh.String()
	if !strings.Contains(got, "2026-02-03 10:30:00") {
		t.Errorf("Shipment.String() missing timestamp: %q", got)
	}
	if !strings.Contains(got, "Jane Roe") {
		t.Errorf("Shipment.String() missing customer: %q", got)
	}
	if !strings.Contains(got, "sent") {
		t.Errorf("Shipment.String() should lowercase the status: %q", got)
	}
}

func TestEntity_UniqueCargoLinePair(t *testing.T) {
	db := testDB(t)
	if err := db.Create(&entity.Stock{Article: 1, Name: "Nut"}).Error; err != nil {
		t.Fatalf("create stock: %v", err)
	}
	sup := entity.Supplier{Organization: "Acme"}
	if err := db.Create(&sup).Error; err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	cargo := entity.Cargo{SupplierID: sup.ID, Status: entity.CargoInTransit}
	if err := db.Create(&cargo).Error; err != nil {
		t.Fatalf("create cargo: %v", err)
	}
	first := entity.CargoStock{CargoID: cargo.ID, StockArticle: 1, Quantity: 2}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first line: %v", err)
	}
	dup := entity.CargoStock{CargoID: cargo.ID, StockArticle: 1, Quantity: 5}
	if err := db.Create(&dup).Error; err == nil {
		t.Error("duplicate (cargo, stock) line should violate unique index")
	}
}

func TestEntity_UniqueShipmentToken(t *testing.T) {
	db := testDB(t)
	cust := entity.Customer{FullName: "A", Email: "a@example.com"}
	if err := db.Create(&cust).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	tok := "1abc"
	s1 := entity.Shipment{CustomerID: cust.ID, Status: entity.ShipmentSent, ConfirmationToken: &tok}
	if err := db.Create(&s1).Error; err != nil {
		t.Fatalf("create shipment: %v", err)
	}
	tok2 := "1abc"
	s2 := entity.Shipment{CustomerID: cust.ID, Status: entity.ShipmentSent, ConfirmationToken: &tok2}
	if err := db.Create(&s2).Error; err == nil {
		t.Error("duplicate confirmation token should violate unique index")
	}
}
