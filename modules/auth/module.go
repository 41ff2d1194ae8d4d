package auth

import (
	"roadwise/core/cache"
	"roadwise/core/database"
	"roadwise/core/middleware"
	"roadwise/modules/auth/controller"
	"roadwise/modules/auth/repository"
	"roadwise/modules/auth/router"
	"roadwise/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, cacheStore cache.ICache) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, cacheStore)
	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Setup(e, mw)
}
