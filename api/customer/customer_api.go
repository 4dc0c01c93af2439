package customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	customerService "warehouse.GO/service/customer"
)

func init() {
	api.RegisterModule(RegisterCustomerRoutes)
}

func RegisterCustomerRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/customers")
	svc := customerService.NewCustomerService(db)

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
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
		}
		cust, err := svc.Get(id)
		if err != nil {
			return customerError(c, err)
		}
		return c.JSON(http.StatusOK, cust)
	})

	g.POST("", func(c echo.Context) error {
		var in customerService.CustomerInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cust, err := svc.Create(in)
		if err != nil {
			return customerError(c, err)
		}
		return c.JSON(http.StatusCreated, cust)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
		}
		var in customerService.CustomerInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cust, err := svc.Update(id, in)
		if err != nil {
			return customerError(c, err)
		}
		return c.JSON(http.StatusOK, cust)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
		}
		if err := svc.Delete(id); err != nil {
			return customerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func customerError(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
