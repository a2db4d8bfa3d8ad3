package main

import (
	"os"

	"github.com/BartekS5/HDE/internal/cli"
	"github.com/BartekS5/HDE/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	logger.Init(os.Stderr)

	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found, using system environment variables")
	}

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
