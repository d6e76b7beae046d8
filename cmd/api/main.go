package main

import (
	_ "buildready/docs"
	"buildready/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BuildReady Estimation API
// @version         1.0
// @description     Construction-estimation onboarding backend (standards, estimates, validation, bids) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
