package main

import (
	"roadwise/core/logger"
	"roadwise/core/server"
)

// @title RoadWise API
// @version 1.0
// @description Backend for the RoadWise mobile traffic-education business: schools, trucks, class-group scheduling, attendance and billing.

// @contact.name API Support
// @contact.email support@roadwise.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
