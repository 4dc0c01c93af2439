package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
)

func init() {
	api.RegisterRoute(RegisterHealthRoute)
}

func RegisterHealthRoute(e *echo.Echo, db *gorm.DB) {
	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status": "degraded",
				"db":     err.Error(),
			})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
}
