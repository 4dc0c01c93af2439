package servicetest

import (
	"errors"
	"testing"

	entity "warehouse.GO/model/entity"
	cargoService "warehouse.GO/service/cargo"
)

func TestCargo_CreateCoalescesDuplicateLines(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 1, "Nut", 1, 0)
	sup := seedSupplier(t, db, "Acme")
	svc, err := cargoService.NewCargoService(db)
	if err != nil {
		t.Fatalf("new cargo service: %v", err)
	}

	cg, err := svc.Create(sup.ID, []cargoService.LineInput{
		{Article: 1, Quantity: 3},
		{Article: 1, Quantity: 4},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	loaded, err := svc.Get(cg.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(loaded.Lines) != 1 {
		t.Fatalf("lines = %d, want 1 (duplicates summed)", len(loaded.Lines))
	}
	if loaded.Lines[0].Quantity != 7 {
		t.Errorf("line quantity = %d, want 7", loaded.Lines[0].Quantity)
	}
	if loaded.Status != entity.CargoInTransit {
		t.Errorf("status = %s, want IN_TRANSIT", loaded.Status)
	}
}

func TestCargo_CreateRejectsEmptyAndUnknown(t *testing.T) {
	db := testDB(t)
	sup := seedSupplier(t, db, "Acme")
	svc, err := cargoService.NewCargoService(db)
	if err != nil {
		t.Fatalf("new cargo service: %v", err)
	}

	if _, err := svc.Create(sup.ID, nil); !errors.Is(err, cargoService.ErrNoLines) {
		t.Errorf("empty lines: err = %v, want ErrNoLines", err)
	}
	if _, err := svc.Create(sup.ID, []cargoService.LineInput{{Article: 42, Quantity: 1}}); err == nil {
		t.Error("unknown article should fail")
	}
}

func TestCargo_ConfirmIncreasesStockOnce(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 1, "Nut", 1, 10)
	seedStock(t, db, 2, "Bolt", 2, 0)
	sup := seedSupplier(t, db, "Acme")
	svc, err := cargoService.NewCargoService(db)
	if err != nil {
		t.Fatalf("new cargo service: %v", err)
	}

	cg, err := svc.Create(sup.ID, []cargoService.LineInput{
		{Article: 1, Quantity: 5},
		{Article: 2, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	confirmed, err := svc.Confirm(cg.ID)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if confirmed.Status != entity.CargoDone {
		t.Errorf("status = %s, want DONE", confirmed.Status)
	}
	if got := stockQty(t, db, 1); got != 15 {
		t.Errorf("article 1 quantity = %d, want 15", got)
	}
	if got := stockQty(t, db, 2); got != 3 {
		t.Errorf("article 2 quantity = %d, want 3", got)
	}

	// Second confirm is a no-op, not a double credit.
	if _, err := svc.Confirm(cg.ID); err != nil {
		t.Fatalf("second Confirm: %v", err)
	}
	if got := stockQty(t, db, 1); got != 15 {
		t.Errorf("article 1 after repeat confirm = %d, want 15", got)
	}

	if _, err := svc.Confirm(9999); !errors.Is(err, cargoService.ErrCargoNotFound) {
		t.Errorf("confirm missing cargo: err = %v, want ErrCargoNotFound", err)
	}
}

func TestCargo_Total(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 1, "Nut", 3, 0)
	seedStock(t, db, 2, "Bolt", 10, 0)
	sup := seedSupplier(t, db, "Acme")
	svc, err := cargoService.NewCargoService(db)
	if err != nil {
		t.Fatalf("new cargo service: %v", err)
	}

	cg, err := svc.Create(sup.ID, []cargoService.LineInput{
		{Article: 1, Quantity: 4},
		{Article: 2, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	total, err := svc.Total(cg.ID)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 32 {
		t.Errorf("total = %v, want 32", total)
	}
}
