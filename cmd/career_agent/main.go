// Package main provides the entry point for the Career Intelligence service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career & Skills Intelligence service",
	Long:  "Career agent analyzes an employee's role and skill profile through an LLM and produces executive-grade, HR-approved career reports as PDF or DOCX.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
