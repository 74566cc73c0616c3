package main

import (
	"courtsched/core/logger"
	"courtsched/core/server"
)

// @title Court Scheduling API
// @version 1.0
// @description Scheduling and migration backend for court bookings: recurring slot configurations, ad-hoc blocks, availability resolution and the legacy block migration engine.

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
