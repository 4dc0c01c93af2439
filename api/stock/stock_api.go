package stock

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	"warehouse.GO/config"
	stockService "warehouse.GO/service/stock"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

const listCacheKey = "api:stock:list"

func RegisterStockRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/stocks")

	svc, err := stockService.NewStockService(db)
	if err != nil {
		panic(err)
	}

	// GET /api/stocks – list, optionally filtered by category subtree.
	// The unfiltered first page is served from Redis when configured.
	g.GET("", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		size, _ := strconv.Atoi(c.QueryParam("size"))
		catParam := c.QueryParam("category")

		if catParam != "" {
			cid, err := strconv.ParseUint(catParam, 10, 32)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
			}
			items, err := svc.ListByCategory(uint(cid))
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, items)
		}

		useCache := config.RedisClient != nil && page <= 1 && size <= 0
		if useCache {
			if cached, err := config.RedisClient.Get(config.RedisCtx(), listCacheKey).Result(); err == nil {
				return c.JSONBlob(http.StatusOK, []byte(cached))
			}
		}

		items, err := svc.List(page, size)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if useCache {
			if b, err := json.Marshal(items); err == nil {
				config.RedisClient.Set(config.RedisCtx(), listCacheKey, b, 30*time.Second)
			}
		}
		return c.JSON(http.StatusOK, items)
	})

	// GET /api/stocks/:article
	g.GET("/:article", func(c echo.Context) error {
		article, err := strconv.ParseUint(c.Param("article"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid article"})
		}
		item, err := svc.Get(uint(article))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "stock item not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	})

	// POST /api/stocks
	g.POST("", func(c echo.Context) error {
		var in stockService.StockInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		item, err := svc.Create(in)
		if err != nil {
			return stockError(c, err)
		}
		invalidateListCache()
		return c.JSON(http.StatusCreated, item)
	})

	// PUT /api/stocks/:article
	g.PUT("/:article", func(c echo.Context) error {
		article, err := strconv.ParseUint(c.Param("article"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid article"})
		}
		var in stockService.StockInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		in.Article = uint(article)
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		item, err := svc.Update(in)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "stock item not found"})
			}
			return stockError(c, err)
		}
		invalidateListCache()
		return c.JSON(http.StatusOK, item)
	})

	// DELETE /api/stocks/:article
	g.DELETE("/:article", func(c echo.Context) error {
		article, err := strconv.ParseUint(c.Param("article"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid article"})
		}
		if err := svc.Delete(uint(article)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateListCache()
		return c.NoContent(http.StatusNoContent)
	})

	// POST /api/stocks/import – CSV upload, upsert by article
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		file, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "file field is required"})
		}
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		defer src.Close()

		batch, _ := strconv.Atoi(c.QueryParam("batch_size"))
		res, err := stockService.ImportCSV(db, src, batch)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}
		invalidateListCache()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"imported":            res.Imported,
			"skipped":             res.Skipped,
			"warnings":            res.Warnings,
			"request_duration_ms": duration,
		})
	})
}

func stockError(c echo.Context, err error) error {
	if errors.Is(err, stockService.ErrNegativePrice) || errors.Is(err, stockService.ErrNegativeQuantity) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func invalidateListCache() {
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), listCacheKey)
	}
}
