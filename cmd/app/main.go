package main

import (
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
)

// @title Hotelier API
// @version 1.0
// @description Hotel operations management service: rooms, customers, employees, bookings, services and invoices.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
