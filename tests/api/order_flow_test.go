package apitest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	orderApi "warehouse.GO/api/order"
	shipmentApi "warehouse.GO/api/shipment"
	entity "warehouse.GO/model/entity"
)

const (
	testUser = "admin"
	testPass = "secret"
)

func orderTestDB(t *testing.T) *gorm.DB {
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

func orderTestServer(t *testing.T, db *gorm.DB) *echo.Echo {
	t.Helper()
	e := echo.New()
	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.BasicAuth(func(user, pass string, c echo.Context) (bool, error) {
		return user == testUser && pass == testPass, nil
	}))
	shipmentApi.RegisterShipmentRoutes(apiGroup, db)
	orderApi.RegisterOrderRoutes(e, db)
	return e
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func doJSON(e *echo.Echo, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func seedArticle(t *testing.T, db *gorm.DB, article uint, qty int) {
	t.Helper()
	s := entity.Stock{Article: article, Name: "Item", Price: decimal.NewFromInt(2), Quantity: qty}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}
}

func TestOrderFlow_EndToEnd(t *testing.T) {
	db := orderTestDB(t)
	seedArticle(t, db, 1, 10)
	e := orderTestServer(t, db)

	// Public order placement, no auth.
	rec := doJSON(e, http.MethodPost, "/order", map[string]interface{}{
		"new_customer": map[string]string{"full_name": "Jane Roe", "email": "jane@example.com"},
		"lines":        []map[string]int{{"article": 1, "quantity": 4}},
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /order = %d, body %s", rec.Code, rec.Body.String())
	}
	var placed struct {
		ShipmentID uint   `json:"shipment_id"`
		Status     string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &placed); err != nil {
		t.Fatalf("decode order response: %v", err)
	}
	if placed.Status != "CREATED" {
		t.Errorf("status = %s, want CREATED", placed.Status)
	}

	// Approval needs credentials.
	approvePath := "/api/shipments/" + itoa(placed.ShipmentID) + "/approve"
	rec = doJSON(e, http.MethodPost, approvePath, nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated approve = %d, want 401", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, approvePath, nil, basicAuth(testUser, testPass))
	if rec.Code != http.StatusOK {
		t.Fatalf("approve = %d, body %s", rec.Code, rec.Body.String())
	}
	var approved struct {
		Shipment struct {
			Status            string  `json:"status"`
			ConfirmationToken *string `json:"confirmation_token"`
		} `json:"shipment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &approved); err != nil {
		t.Fatalf("decode approve response: %v", err)
	}
	if approved.Shipment.Status != "SENT" {
		t.Errorf("status = %s, want SENT", approved.Shipment.Status)
	}
	if approved.Shipment.ConfirmationToken == nil {
		t.Fatal("approve response carries no token")
	}

	var item entity.Stock
	if err := db.First(&item, "article = ?", 1).Error; err != nil {
		t.Fatalf("reload stock: %v", err)
	}
	if item.Quantity != 6 {
		t.Errorf("stock = %d, want 6 after reservation", item.Quantity)
	}

	// Public redemption, then the same link again.
	confirmPath := "/confirm/" + *approved.Shipment.ConfirmationToken
	rec = doJSON(e, http.MethodGet, confirmPath, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("redeem = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(e, http.MethodGet, confirmPath, nil, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second redeem = %d, want 404", rec.Code)
	}
}

func TestOrderFlow_ApproveConflictOnShortStock(t *testing.T) {
	db := orderTestDB(t)
	seedArticle(t, db, 1, 5)
	e := orderTestServer(t, db)

	rec := doJSON(e, http.MethodPost, "/order", map[string]interface{}{
		"new_customer": map[string]string{"full_name": "Jane", "email": "jane@example.com"},
		"lines":        []map[string]int{{"article": 1, "quantity": 5}},
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /order = %d", rec.Code)
	}
	var placed struct {
		ShipmentID uint `json:"shipment_id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &placed)

	rec = doJSON(e, http.MethodPost, "/api/shipments/"+itoa(placed.ShipmentID)+"/approve", nil, basicAuth(testUser, testPass))
	if rec.Code != http.StatusConflict {
		t.Fatalf("approve = %d, want 409, body %s", rec.Code, rec.Body.String())
	}
	var conflict struct {
		Articles []uint `json:"articles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &conflict); err != nil {
		t.Fatalf("decode conflict: %v", err)
	}
	if len(conflict.Articles) != 1 || conflict.Articles[0] != 1 {
		t.Errorf("articles = %v, want [1]", conflict.Articles)
	}
}

func TestOrderFlow_BadPayloads(t *testing.T) {
	db := orderTestDB(t)
	e := orderTestServer(t, db)

	rec := doJSON(e, http.MethodPost, "/order", map[string]interface{}{
		"new_customer": map[string]string{"full_name": "Jane", "email": "jane@example.com"},
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("order without lines = %d, want 400", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/confirm/doesnotexist", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("bogus token = %d, want 404", rec.Code)
	}
}

func itoa(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}
