package main

import (
	"log"

	"stayhub_backend/internal/app"
)

// @title StayHub API
// @version 1.0
// @description Property rental backend: listings, bookings and host stats.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
