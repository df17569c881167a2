package cmd

import (
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/spf13/cobra"
)

var renumberCmd = &cobra.Command{
	Use:   "renumber FILE",
	Short: "Rewrite section headings with canonical sequential numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		content, err := readDocument(args[0])
		if err != nil {
			return err
		}
		updated, rep := eng.Renumber(content)
		if err := writeDocument(args[0], updated); err != nil {
			return err
		}
		render.Renumber(cmd.OutOrStdout(), rep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renumberCmd)
}
