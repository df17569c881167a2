package cmd

import (
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Show the document's section structure",
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
		render.Inspect(cmd.OutOrStdout(), eng.Inspect(content))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
