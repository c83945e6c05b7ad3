package main

import (
	_ "dealdesk/docs"
	"dealdesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Deal Desk API
// @version         1.0
// @description     Search-fund deal workspace: EBITDA adjustments, SBA financing analysis and CIM extraction.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
