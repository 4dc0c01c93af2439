package servicetest

import (
	"testing"

	entity "warehouse.GO/model/entity"
	actionlogService "warehouse.GO/service/actionlog"
	cargoService "warehouse.GO/service/cargo"
	shipmentService "warehouse.GO/service/shipment"
	supplierService "warehouse.GO/service/supplier"
)

func TestActionLog_SupplierLifecycle(t *testing.T) {
	db := testDB(t)
	svc := supplierService.NewSupplierService(db)

	sup, err := svc.Create(supplierService.SupplierInput{Organization: "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Update(sup.ID, supplierService.SupplierInput{Organization: "Acme Ltd"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := svc.Delete(sup.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// One entry per mutation: create, update, delete.
	if n := auditCount(t, db, "supplier"); n != 3 {
		t.Errorf("supplier audit entries = %d, want 3", n)
	}

	entries, err := actionlogService.List(db, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	actions := map[entity.LogAction]int{}
	for _, e := range entries {
		actions[e.Action]++
	}
	if actions[entity.ActionCreate] != 1 || actions[entity.ActionUpdate] != 1 || actions[entity.ActionDelete] != 1 {
		t.Errorf("actions = %v, want one of each", actions)
	}
}

func TestActionLog_SnapshotSurvivesEntityDeletion(t *testing.T) {
	db := testDB(t)
	svc := supplierService.NewSupplierService(db)

	sup, err := svc.Create(supplierService.SupplierInput{Organization: "Ghost Corp"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(sup.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, err := actionlogService.List(db, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.Action == entity.ActionDelete && e.Snapshot == "Ghost Corp" {
			found = true
		}
	}
	if !found {
		t.Error("delete entry should keep the textual snapshot of the deleted row")
	}
}

func TestActionLog_CargoConfirmAuditsOnce(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 1, "Nut", 1, 0)
	sup := seedSupplier(t, db, "Acme")
	svc, err := cargoService.NewCargoService(db)
	if err != nil {
		t.Fatalf("new cargo service: %v", err)
	}

	cg, err := svc.Create(sup.ID, []cargoService.LineInput{{Article: 1, Quantity: 2}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	created := auditCount(t, db, "cargo")

	if _, err := svc.Confirm(cg.ID); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	afterFirst := auditCount(t, db, "cargo")
	if afterFirst != created+1 {
		t.Errorf("confirm should add exactly one cargo entry: %d -> %d", created, afterFirst)
	}

	// The idempotent no-op re-confirm writes nothing.
	if _, err := svc.Confirm(cg.ID); err != nil {
		t.Fatalf("second Confirm: %v", err)
	}
	if n := auditCount(t, db, "cargo"); n != afterFirst {
		t.Errorf("repeat confirm must not audit: %d -> %d", afterFirst, n)
	}
}

func TestActionLog_OrderFlowEntries(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 1, "Nut", 1, 10)
	svc, err := shipmentService.NewShipmentService(db, &stubNotifier{})
	if err != nil {
		t.Fatalf("new shipment service: %v", err)
	}

	sh, err := svc.Create(shipmentService.CreateInput{
		NewCustomer: &shipmentService.CustomerInput{FullName: "Jane", Email: "jane@example.com"},
		Lines:       []shipmentService.LineInput{{Article: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n := auditCount(t, db, "customer"); n != 1 {
		t.Errorf("inline customer audit entries = %d, want 1", n)
	}
	if n := auditCount(t, db, "shipment"); n != 1 {
		t.Errorf("shipment audit entries after create = %d, want 1", n)
	}
	if n := auditCount(t, db, "shipment_stock"); n != 1 {
		t.Errorf("line audit entries = %d, want 1", n)
	}

	if _, _, err := svc.Approve(sh.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if n := auditCount(t, db, "shipment"); n != 2 {
		t.Errorf("shipment audit entries after approve = %d, want 2", n)
	}
}
