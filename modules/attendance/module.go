package attendance

import (
	"roadwise/core/database"
	"roadwise/core/middleware"
	"roadwise/modules/attendance/controller"
	"roadwise/modules/attendance/repository"
	"roadwise/modules/attendance/router"
	"roadwise/modules/attendance/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewAttendanceRepository(db)
	svc := service.NewAttendanceService(repo)
	ctrl := controller.NewAttendanceController(svc)
	router.NewAttendanceRouter(ctrl).Setup(e, mw)
}
