package category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	categoryService "warehouse.GO/service/category"
)

func init() {
	api.RegisterModule(RegisterCategoryRoutes)
}

func RegisterCategoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/categories")
	svc := categoryService.NewCategoryService(db)

	g.GET("", func(c echo.Context) error {
		list, err := svc.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	// GET /api/categories/tree – whole forest, nested
	g.GET("/tree", func(c echo.Context) error {
		tree, err := svc.Tree()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, tree)
	})

	// GET /api/categories/:id/value – stock value of the subtree
	g.GET("/:id/value", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
		}
		total, err := svc.SubtreeValue(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"category_id": id, "value": total})
	})

	g.POST("", func(c echo.Context) error {
		var in categoryService.CategoryInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cat, err := svc.Create(in)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, cat)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
		}
		var in categoryService.CategoryInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cat, err := svc.Update(id, in)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cat)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
		}
		if err := svc.Delete(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
