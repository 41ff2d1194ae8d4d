package billing

import (
	"roadwise/core/database"
	"roadwise/core/middleware"
	"roadwise/core/tasks"
	"roadwise/modules/billing/controller"
	"roadwise/modules/billing/repository"
	"roadwise/modules/billing/router"
	"roadwise/modules/billing/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, taskClient tasks.Enqueuer) {
	repo := repository.NewBillingRepository(db)
	svc := service.NewBillingService(repo, taskClient)
	ctrl := controller.NewBillingController(svc)
	router.NewBillingRouter(ctrl).Setup(e, mw)
}
