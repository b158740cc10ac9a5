package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/akarpov87/accountd/internal/server"
	"github.com/akarpov87/accountd/internal/server/config"
)

func main() {

	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
