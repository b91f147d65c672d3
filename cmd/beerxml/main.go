package main

import (
	"github.com/joho/godotenv"

	"github.com/brewkit/beerxml/pkg/cli"
)

func main() {
	_ = godotenv.Load()

	cli.Execute()
}
