package graphqltest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse.GO/graphqlserver"
	entity "warehouse.GO/model/entity"
)

func gqlTestDB(t *testing.T) *gorm.DB {
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

func TestGraphQL_SchemaParses(t *testing.T) {
	db := gqlTestDB(t)
	if _, err := graphqlserver.NewSchema(db); err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
}

func TestGraphQL_StockQueries(t *testing.T) {
	db := gqlTestDB(t)
	items := []entity.Stock{
		{Article: 1, Name: "Nut", Price: decimal.NewFromFloat(0.5), Quantity: 100},
		{Article: 2, Name: "Bolt", Price: decimal.NewFromInt(2), Quantity: 40},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	schema, err := graphqlserver.NewSchema(db)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}

	res := schema.Exec(context.Background(), `{
		stock(article: "1") { article name price quantity }
		stocks { totalCount items { article } pageInfo { totalPages } }
		missing: stock(article: "99") { article }
	}`, "", nil)
	if len(res.Errors) > 0 {
		t.Fatalf("exec errors: %v", res.Errors)
	}

	var data struct {
		Stock *struct {
			Article  string `json:"article"`
			Name     string `json:"name"`
			Price    string `json:"price"`
			Quantity int    `json:"quantity"`
		} `json:"stock"`
		Stocks struct {
			TotalCount int `json:"totalCount"`
			Items      []struct {
				Article string `json:"article"`
			} `json:"items"`
			PageInfo struct {
				TotalPages int `json:"totalPages"`
			} `json:"pageInfo"`
		} `json:"stocks"`
		Missing *struct{} `json:"missing"`
	}
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Stock == nil || data.Stock.Name != "Nut" || data.Stock.Price != "0.50" {
		t.Errorf("stock = %+v, want Nut at 0.50", data.Stock)
	}
	if data.Stocks.TotalCount != 2 || len(data.Stocks.Items) != 2 {
		t.Errorf("stocks = %+v, want 2 items", data.Stocks)
	}
	if data.Stocks.PageInfo.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", data.Stocks.PageInfo.TotalPages)
	}
	if data.Missing != nil {
		t.Error("unknown article should resolve to null")
	}
}

func TestGraphQL_ShipmentQuery(t *testing.T) {
	db := gqlTestDB(t)
	if err := db.Create(&entity.Stock{Article: 1, Name: "Nut", Price: decimal.NewFromInt(3), Quantity: 10}).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}
	cust := entity.Customer{FullName: "Jane Roe", Email: "jane@example.com"}
	if err := db.Create(&cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	sh := entity.Shipment{CustomerID: cust.ID, Status: entity.ShipmentSent}
	if err := db.Create(&sh).Error; err != nil {
		t.Fatalf("seed shipment: %v", err)
	}
	line := entity.ShipmentStock{ShipmentID: sh.ID, StockArticle: 1, Quantity: 2}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("seed line: %v", err)
	}

	schema, err := graphqlserver.NewSchema(db)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	res := schema.Exec(context.Background(),
		`query($id: ID!) { shipment(id: $id) { status customer notified total lines { article quantity } } }`,
		"", map[string]interface{}{"id": "1"})
	if len(res.Errors) > 0 {
		t.Fatalf("exec errors: %v", res.Errors)
	}

	var data struct {
		Shipment struct {
			Status   string  `json:"status"`
			Customer string  `json:"customer"`
			Notified bool    `json:"notified"`
			Total    float64 `json:"total"`
			Lines    []struct {
				Article  string `json:"article"`
				Quantity int    `json:"quantity"`
			} `json:"lines"`
		} `json:"shipment"`
	}
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Shipment.Status != "SENT" || data.Shipment.Customer != "Jane Roe" {
		t.Errorf("shipment = %+v", data.Shipment)
	}
	if data.Shipment.Notified {
		t.Error("notified should be false without notified_at")
	}
	if data.Shipment.Total != 6 {
		t.Errorf("total = %v, want 6", data.Shipment.Total)
	}
	if len(data.Shipment.Lines) != 1 || data.Shipment.Lines[0].Quantity != 2 {
		t.Errorf("lines = %+v", data.Shipment.Lines)
	}
}
