package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/mdstruct/internal/config"
	"github.com/itsmostafa/mdstruct/internal/engine"
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/itsmostafa/mdstruct/internal/version"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mdstruct",
	Short: "Structural editor for markdown documents",
	Long: `mdstruct parses a heading-structured markdown document into a section tree
and keeps that structure consistent: sequential section numbering, a derived
table of contents, and structure-preserving edits (move, insert, delete,
promote, demote).

Validation commands are read-only; structural commands rewrite the file in
place and leave numbering stale until an explicit 'renumber'.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mdstruct %s\n", version.String()))

	// Config path flag with env var fallback
	defaultConfig := config.DefaultFile
	if envPath := os.Getenv("MDSTRUCT_CONFIG"); envPath != "" {
		defaultConfig = envPath
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfig, "Path to the config file")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		render.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func newEngine() (*engine.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return engine.New(cfg), nil
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeDocument(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
