package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/brewkit/beerxml/pkg/api"
)

func main() {
	// optional; the environment still wins over .env values
	_ = godotenv.Load()

	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
