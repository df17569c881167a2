package cmd

import (
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check section numbering and TOC consistency",
	Long: `Validate compares every section's written number against the canonical
sequential number for its position, and the table of contents against the
current section tree. Mismatches are reported as data; the file is never
modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		content, err := readDocument(args[0])
		if err != nil {
			return err
		}
		render.Validation(cmd.OutOrStdout(), eng.Validate(content))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
