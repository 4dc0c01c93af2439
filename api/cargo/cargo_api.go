package cargo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	cargoService "warehouse.GO/service/cargo"
	stockService "warehouse.GO/service/stock"
)

func init() {
	api.RegisterModule(RegisterCargoRoutes)
}

type createRequest struct {
	SupplierID uint                     `json:"supplier_id" validate:"required"`
	Lines      []cargoService.LineInput `json:"lines" validate:"required,min=1,dive"`
}

func RegisterCargoRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/cargos")
	svc, err := cargoService.NewCargoService(db)
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
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cargo id"})
		}
		cg, err := svc.Get(id)
		if err != nil {
			return cargoError(c, err)
		}
		return c.JSON(http.StatusOK, cg)
	})

	g.GET("/:id/total", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cargo id"})
		}
		total, err := svc.Total(id)
		if err != nil {
			return cargoError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"cargo_id": id, "total": total})
	})

	g.POST("", func(c echo.Context) error {
		var req createRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := api.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cg, err := svc.Create(req.SupplierID, req.Lines)
		if err != nil {
			return cargoError(c, err)
		}
		return c.JSON(http.StatusCreated, cg)
	})

	// POST /api/cargos/:id/confirm – arrival confirmation, idempotent.
	g.POST("/:id/confirm", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cargo id"})
		}
		cg, err := svc.Confirm(id)
		if err != nil {
			return cargoError(c, err)
		}
		return c.JSON(http.StatusOK, cg)
	})
}

func cargoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, cargoService.ErrCargoNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, cargoService.ErrNoLines):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, stockService.ErrUnknownArticle):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
