package truck

import (
	"roadwise/core/database"
	"roadwise/core/middleware"
	"roadwise/modules/truck/controller"
	"roadwise/modules/truck/repository"
	"roadwise/modules/truck/router"
	"roadwise/modules/truck/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewTruckRepository(db)
	svc := service.NewTruckService(repo)
	ctrl := controller.NewTruckController(svc)
	router.NewTruckRouter(ctrl).Setup(e, mw)
}
