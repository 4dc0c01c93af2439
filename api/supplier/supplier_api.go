package supplier

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	supplierService "warehouse.GO/service/supplier"
)

func init() {
	api.RegisterModule(RegisterSupplierRoutes)
}

func RegisterSupplierRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/suppliers")
	svc := supplierService.NewSupplierService(db)

	g.GET("", func(c echo.Context) error {
		list, err := svc.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier id"})
		}
		sup, err := svc.Get(id)
		if err != nil {
			return supplierError(c, err)
		}
		return c.JSON(http.StatusOK, sup)
	})

	g.POST("", func(c echo.Context) error {
		var in supplierService.SupplierInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		sup, err := svc.Create(in)
		if err != nil {
			return supplierError(c, err)
		}
		return c.JSON(http.StatusCreated, sup)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier id"})
		}
		var in supplierService.SupplierInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		sup, err := svc.Update(id, in)
		if err != nil {
			return supplierError(c, err)
		}
		return c.JSON(http.StatusOK, sup)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier id"})
		}
		if err := svc.Delete(id); err != nil {
			return supplierError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func supplierError(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "supplier not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
