package router

import (
	"roadwise/core/middleware"
	"roadwise/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/public/auth")
	public.POST("/register", r.controller.Register)
	public.POST("/login", r.controller.Login)
	public.GET("/google", r.controller.GoogleLogin)
	public.GET("/google/callback", r.controller.GoogleCallback)

	private := v1.Group("/private/auth", mw.AuthMiddleware())
	private.POST("/logout", r.controller.Logout)
	private.GET("/me", r.controller.Me)
}
