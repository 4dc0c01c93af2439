package actionlog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	actionlogService "warehouse.GO/service/actionlog"
)

func init() {
	api.RegisterModule(RegisterActionLogRoutes)
}

// The log is append-only: read endpoints only, no mutation surface.
func RegisterActionLogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/actionlog")

	g.GET("", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
		entries, err := actionlogService.List(db, page, pageSize)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, entries)
	})
}
