package main

import (
	"os"

	"github.com/joengan/passforge/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
