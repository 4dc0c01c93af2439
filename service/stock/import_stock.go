package stock

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"warehouse.GO/model/entity"
)

// ImportResult holds the result of a stock import run.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// importData holds collected stock rows ready to flush.
type importData struct {
	rows     []entity.Stock
	skipped  int
	warnings []string
}

// collectRows parses CSV rows and buffers stock items.
// Expected header: article,name,price,quantity[,category_id]
func collectRows(rows [][]string, colIndex map[string]int) *importData {
	d := &importData{}
	for _, row := range rows {
		get := func(col string) string {
			if ci, ok := colIndex[col]; ok && ci < len(row) {
				return strings.TrimSpace(row[ci])
			}
			return ""
		}

		articleStr := get("article")
		if articleStr == "" {
			d.skipped++
			continue
		}
		article, err := strconv.ParseUint(articleStr, 10, 32)
		if err != nil {
			d.warnings = append(d.warnings, fmt.Sprintf("invalid article %q", articleStr))
			d.skipped++
			continue
		}

		item := entity.Stock{Article: uint(article), Name: get("name")}
		if item.Name == "" {
			d.warnings = append(d.warnings, fmt.Sprintf("article=%d: missing name", article))
			d.skipped++
			continue
		}

		if v := get("price"); v != "" {
			p, err := decimal.NewFromString(v)
			if err != nil || p.IsNegative() {
				d.warnings = append(d.warnings, fmt.Sprintf("article=%d: invalid price %q", article, v))
				d.skipped++
				continue
			}
			item.Price = p
		}
		if v := get("quantity"); v != "" {
			q, err := strconv.Atoi(v)
			if err != nil || q < 0 {
				d.warnings = append(d.warnings, fmt.Sprintf("article=%d: invalid quantity %q", article, v))
				d.skipped++
				continue
			}
			item.Quantity = q
		}
		if v := get("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 32)
			if err == nil {
				c := uint(cid)
				item.CategoryID = &c
			}
		}

		d.rows = append(d.rows, item)
	}
	return d
}

// flushRows upserts buffered stock items keyed by article.
func flushRows(db *gorm.DB, d *importData, batchSize int) error {
	if len(d.rows) == 0 {
		return nil
	}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "article"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "quantity", "category_id"}),
	}
	return db.Clauses(upsert).CreateInBatches(d.rows, batchSize).Error
}

// ImportCSV reads stock items from CSV and upserts them by article.
func ImportCSV(db *gorm.DB, r io.Reader, batchSize int) (*ImportResult, error) {
	if batchSize <= 0 {
		batchSize = 500
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := colIndex["article"]; !ok {
		return nil, fmt.Errorf("CSV header must contain an article column")
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}

	d := collectRows(rows, colIndex)
	if err := flushRows(db, d, batchSize); err != nil {
		return nil, err
	}
	return &ImportResult{
		Imported: len(d.rows),
		Skipped:  d.skipped,
		Warnings: d.warnings,
	}, nil
}
