// Command validate-config loads and validates the service configuration,
// printing a masked summary. Useful as a deploy-time smoke check.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/nutriplan/nutriplan-backend/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("no .env file loaded: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("configuration valid")
	fmt.Printf("  port:            %s\n", cfg.Server.Port)
	fmt.Printf("  environment:     %s\n", cfg.Server.Environment)
	fmt.Printf("  database url:    %s\n", maskSecret(cfg.Database.URL))
	fmt.Printf("  openai enabled:  %t\n", cfg.OpenAI.Enabled)
	if cfg.OpenAI.Enabled {
		fmt.Printf("  openai model:    %s\n", cfg.OpenAI.Model)
		fmt.Printf("  openai api key:  %s\n", maskSecret(cfg.OpenAI.APIKey))
	}
	fmt.Printf("  log level:       %s\n", cfg.Logging.Level)
	fmt.Printf("  log format:      %s\n", cfg.Logging.Format)
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
