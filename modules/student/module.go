package student

import (
	"roadwise/core/database"
	"roadwise/core/middleware"
	"roadwise/modules/student/controller"
	"roadwise/modules/student/repository"
	"roadwise/modules/student/router"
	"roadwise/modules/student/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewStudentRepository(db)
	svc := service.NewStudentService(repo)
	ctrl := controller.NewStudentController(svc)
	router.NewStudentRouter(ctrl).Setup(e, mw)
}
