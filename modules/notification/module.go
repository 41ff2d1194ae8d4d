package notification

import (
	"roadwise/core/database"
	"roadwise/core/middleware"
	"roadwise/modules/notification/controller"
	"roadwise/modules/notification/repository"
	"roadwise/modules/notification/router"
	"roadwise/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	router.NewNotificationRouter(ctrl).Setup(e, mw)
	return svc
}
