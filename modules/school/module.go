package school

import (
	"roadwise/core/database"
	"roadwise/core/middleware"
	"roadwise/modules/school/controller"
	"roadwise/modules/school/repository"
	"roadwise/modules/school/router"
	"roadwise/modules/school/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewSchoolRepository(db)
	svc := service.NewSchoolService(repo)
	ctrl := controller.NewSchoolController(svc)
	router.NewSchoolRouter(ctrl).Setup(e, mw)
}
