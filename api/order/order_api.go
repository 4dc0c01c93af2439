// Package order exposes the public, unauthenticated order flow:
// customers submit orders and redeem confirmation links without an
// account, so these routes live outside the /api group.
package order

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	"warehouse.GO/config"
	"warehouse.GO/service/notifier"
	shipmentService "warehouse.GO/service/shipment"
)

func init() {
	api.RegisterRoute(RegisterOrderRoutes)
}

func RegisterOrderRoutes(e *echo.Echo, db *gorm.DB) {
	svc, err := shipmentService.NewShipmentService(db, notifier.FromConfig(config.LoadMailerConfig()))
	if err != nil {
		panic(err)
	}

	// POST /order – place an order, creating the shipment in CREATED.
	// Stock is not touched until a manager approves it.
	e.POST("/order", func(c echo.Context) error {
		var in shipmentService.CreateInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		sh, err := svc.Create(in)
		if err != nil {
			switch {
			case errors.Is(err, shipmentService.ErrNoLines),
				errors.Is(err, shipmentService.ErrCustomerRequired),
				errors.Is(err, gorm.ErrRecordNotFound):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"shipment_id": sh.ID,
			"status":      sh.Status,
		})
	})

	// GET /confirm/:token – single-use redemption of a delivery link.
	// Unknown, reused and foreign tokens all get the same 404.
	e.GET("/confirm/:token", func(c echo.Context) error {
		sh, err := svc.Redeem(c.Param("token"))
		if err != nil {
			if errors.Is(err, shipmentService.ErrShipmentNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "shipment not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"shipment_id": sh.ID,
			"status":      sh.Status,
			"message":     "delivery confirmed",
		})
	})
}
