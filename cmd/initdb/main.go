// Command initdb creates the contracts table. Running it again is harmless.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/store"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "initdb: %v\n", err)
		os.Exit(1)
	}

	if err := store.InitSchema(context.Background(), cfg.Database.Path); err != nil {
		fmt.Fprintf(os.Stderr, "initdb: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("initialized %s\n", cfg.Database.Path)
}
