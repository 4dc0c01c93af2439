package servicetest

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	entity "warehouse.GO/model/entity"
	"warehouse.GO/service/notifier"
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

func seedStock(t *testing.T, db *gorm.DB, article uint, name string, price int64, qty int) {
	t.Helper()
	s := entity.Stock{Article: article, Name: name, Price: decimal.NewFromInt(price), Quantity: qty}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed stock %d: %v", article, err)
	}
}

func stockQty(t *testing.T, db *gorm.DB, article uint) int {
	t.Helper()
	var s entity.Stock
	if err := db.First(&s, "article = ?", article).Error; err != nil {
		t.Fatalf("load stock %d: %v", article, err)
	}
	return s.Quantity
}

func seedSupplier(t *testing.T, db *gorm.DB, org string) entity.Supplier {
	t.Helper()
	s := entity.Supplier{Organization: org}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	return s
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) entity.Customer {
	t.Helper()
	c := entity.Customer{FullName: name, Email: name + "@example.com"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func auditCount(t *testing.T, db *gorm.DB, entityName string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&entity.ActionLogEntry{}).Where("entity = ?", entityName).Count(&n).Error; err != nil {
		t.Fatalf("count audit entries: %v", err)
	}
	return n
}

// stubNotifier records outgoing messages and can be told to fail.
type stubNotifier struct {
	sent []notifier.Message
	fail bool
}

func (s *stubNotifier) Send(msg notifier.Message) error {
	if s.fail {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}
