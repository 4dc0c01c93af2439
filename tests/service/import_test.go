package servicetest

import (
	"strings"
	"testing"

	stockService "warehouse.GO/service/stock"
)

func TestImportCSV_BasicImport(t *testing.T) {
	db := testDB(t)

	csv := strings.Join([]string{
		"article,name,price,quantity",
		"1,Nut M6,0.12,100",
		"2,Bolt M6,0.40,50",
	}, "\n")

	res, err := stockService.ImportCSV(db, strings.NewReader(csv), 10)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 0 {
		t.Errorf("imported=%d skipped=%d, want 2/0", res.Imported, res.Skipped)
	}
	if got := stockQty(t, db, 1); got != 100 {
		t.Errorf("article 1 quantity = %d, want 100", got)
	}
}

func TestImportCSV_UpsertsExistingArticles(t *testing.T) {
	db := testDB(t)
	seedStock(t, db, 1, "Old name", 1, 5)

	csv := "article,name,price,quantity\n1,New name,2.50,8\n"
	res, err := stockService.ImportCSV(db, strings.NewReader(csv), 10)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Imported != 1 {
		t.Errorf("imported = %d, want 1", res.Imported)
	}
	var name string
	if err := db.Raw("SELECT name FROM stock WHERE article = 1").Scan(&name).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if name != "New name" {
		t.Errorf("name = %q, want upserted %q", name, "New name")
	}
}

func TestImportCSV_SkipsBadRows(t *testing.T) {
	db := testDB(t)

	csv := strings.Join([]string{
		"article,name,price,quantity",
		"notanumber,Broken,1.00,5",
		"3,Good,1.00,5",
	}, "\n")

	res, err := stockService.ImportCSV(db, strings.NewReader(csv), 10)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Imported != 1 || res.Skipped != 1 {
		t.Errorf("imported=%d skipped=%d, want 1/1", res.Imported, res.Skipped)
	}
	if len(res.Warnings) == 0 {
		t.Error("bad row should produce a warning")
	}
}

func TestImportCSV_RequiresArticleColumn(t *testing.T) {
	db := testDB(t)
	if _, err := stockService.ImportCSV(db, strings.NewReader("name,price\nNut,1.00\n"), 10); err == nil {
		t.Error("missing article column should fail")
	}
}
