package main

import (
	"fmt"
	"io"
	"os"
)

type SetupCommand struct{}

func (c *SetupCommand) Name() string {
	return "setup"
}

func (c *SetupCommand) Description() string {
	return "Setup development environment"
}

func (c *SetupCommand) Run(args []string) error {
	PrintHeader("Starting Environment Setup")

	// 1. Setup .env
	PrintInfo("Step 1/4: Configuring environment...")
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		PrintInfo("Creating .env from .env.example...")
		if err := copyFile(".env.example", ".env"); err != nil {
			return fmt.Errorf("failed to create .env: %w", err)
		}
		PrintSuccess(".env created")
		PrintInfo("Note: .env created. You might need to re-run if env vars are missing.")
	} else {
		PrintSuccess(".env already exists")
	}

	// 2. Start Docker & DB
	PrintInfo("Step 2/4: Starting database...")
	if err := (&CheckDBCommand{}).Run(nil); err != nil {
		return err
	}

	// 3. Run Migrations
	PrintInfo("Step 3/4: Running migrations...")
	if err := (&MigrateCommand{}).Run([]string{"up"}); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// 4. Generate swagger docs
	PrintInfo("Step 4/4: Generating swagger docs...")
	if err := runCommandVerbose("go", "run", "github.com/swaggo/swag/cmd/swag", "init", "-g", "cmd/app/main.go", "-o", "docs"); err != nil {
		return fmt.Errorf("swagger generation failed: %w", err)
	}

	PrintSuccess("Setup complete! You can now run 'go run ./cmd/app'.")
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}
