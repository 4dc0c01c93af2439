package shipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	"warehouse.GO/config"
	"warehouse.GO/service/notifier"
	shipmentService "warehouse.GO/service/shipment"
)

func init() {
	api.RegisterModule(RegisterShipmentRoutes)
}

func RegisterShipmentRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/shipments")
	svc, err := shipmentService.NewShipmentService(db, notifier.FromConfig(config.LoadMailerConfig()))
	if err != nil {
		panic(err)
	}

	g.GET("", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
		list, err := svc.List(page, pageSize)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shipment id"})
		}
		sh, err := svc.Get(id)
		if err != nil {
			return shipmentError(c, err)
		}
		return c.JSON(http.StatusOK, sh)
	})

	g.GET("/:id/total", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shipment id"})
		}
		total, err := svc.Total(id)
		if err != nil {
			return shipmentError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"shipment_id": id, "total": total})
	})

	// POST /api/shipments/:id/approve – reserve stock, issue the
	// confirmation token and notify the customer.
	g.POST("/:id/approve", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shipment id"})
		}
		sh, notified, err := svc.Approve(id)
		if err != nil {
			var avail *shipmentService.AvailabilityError
			if errors.As(err, &avail) {
				return c.JSON(http.StatusConflict, echo.Map{
					"error":    "insufficient stock",
					"articles": avail.Articles,
				})
			}
			return shipmentError(c, err)
		}
		resp := echo.Map{"shipment": sh}
		if !notified {
			// Reservation holds either way; the retry job re-sends.
			resp["warning"] = "customer notification failed, delivery pending"
		}
		return c.JSON(http.StatusOK, resp)
	})

	g.POST("/:id/cancel", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shipment id"})
		}
		sh, err := svc.Cancel(id)
		if err != nil {
			return shipmentError(c, err)
		}
		return c.JSON(http.StatusOK, sh)
	})
}

func shipmentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, shipmentService.ErrShipmentNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "shipment not found"})
	case errors.Is(err, shipmentService.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, shipmentService.ErrNoLines),
		errors.Is(err, shipmentService.ErrCustomerRequired):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
