package main

import (
	"os"

	"github.com/GoFEDS/GoFEDS/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
