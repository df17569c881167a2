package cmd

import (
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/spf13/cobra"
)

var (
	cleanupWidth int
	cleanupDepth int
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup FILE",
	Short: "Rewrap, fix, renumber, and refresh the TOC in one pass",
	Long: `Cleanup runs the full pipeline: rewrap paragraphs, auto-fix lint issues,
renumber sections, and refresh the table of contents if one exists. Any lint
issues that cannot be auto-fixed are reported at the end.`,
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
		updated, rep := eng.Cleanup(content, cleanupWidth, cleanupDepth)
		if rep.Modified {
			if err := writeDocument(args[0], updated); err != nil {
				return err
			}
		}
		render.Cleanup(cmd.OutOrStdout(), rep)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().IntVar(&cleanupWidth, "width", 0, "Maximum line width for rewrap (0 = config default)")
	cleanupCmd.Flags().IntVar(&cleanupDepth, "depth", 0, "TOC depth (0 = config default)")
	rootCmd.AddCommand(cleanupCmd)
}
