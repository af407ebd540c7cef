package main

import (
	"fmt"
	"log"

	"github.com/stpnv0/VillaBooker/internal/app"
	"github.com/stpnv0/VillaBooker/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.MustLoad()

	villa, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = villa.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	return nil
}
