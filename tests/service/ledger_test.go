package servicetest

import (
	"errors"
	"testing"

	stockService "warehouse.GO/service/stock"
)

func TestLedger_IncreaseAndDecrease(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 100, "Washer", 1, 10)

	if err := stockService.Increase(db, 100, 5); err != nil {
		t.Fatalf("Increase: %v", err)
	}
	if got := stockQty(t, db, 100); got != 15 {
		t.Errorf("quantity after increase = %d, want 15", got)
	}

	if err := stockService.Decrease(db, 100, 4); err != nil {
		t.Fatalf("Decrease: %v", err)
	}
	if got := stockQty(t, db, 100); got != 11 {
		t.Errorf("quantity after decrease = %d, want 11", got)
	}
}

func TestLedger_DecreaseRequiresStrictSurplus(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 100, "Washer", 1, 5)

	// Taking all 5 of 5 is rejected: the check is quantity > requested.
	err := stockService.Decrease(db, 100, 5)
	if !errors.Is(err, stockService.ErrInsufficientStock) {
		t.Fatalf("Decrease 5 of 5: err = %v, want ErrInsufficientStock", err)
	}
	if got := stockQty(t, db, 100); got != 5 {
		t.Errorf("failed decrease must not change quantity: got %d", got)
	}

	// Taking 4 of 5 passes and leaves one.
	if err := stockService.Decrease(db, 100, 4); err != nil {
		t.Fatalf("Decrease 4 of 5: %v", err)
	}
	if got := stockQty(t, db, 100); got != 1 {
		t.Errorf("quantity = %d, want 1", got)
	}
}

func TestLedger_UnknownArticle(t *testing.T) {
	db := testDB(t)

	if err := stockService.Increase(db, 999, 1); !errors.Is(err, stockService.ErrUnknownArticle) {
		t.Errorf("Increase unknown: err = %v, want ErrUnknownArticle", err)
	}
	if err := stockService.Decrease(db, 999, 1); !errors.Is(err, stockService.ErrInsufficientStock) {
		t.Errorf("Decrease unknown: err = %v, want ErrInsufficientStock", err)
	}
}
