package cmd

import (
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/spf13/cobra"
)

var tocDepth int

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Manage the table of contents",
}

var tocUpdateCmd = &cobra.Command{
	Use:   "update FILE",
	Short: "Create or refresh the table of contents",
	Long: `Update derives TOC entries from the section tree and writes them into the
"Table of Contents" section, creating it after the document title if it does
not exist and relocating it there if it drifted elsewhere.`,
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
		updated, rep := eng.UpdateTOC(content, tocDepth)
		if err := writeDocument(args[0], updated); err != nil {
			return err
		}
		render.TOCReport(cmd.OutOrStdout(), rep)
		return nil
	},
}

var tocRemoveCmd = &cobra.Command{
	Use:   "remove FILE",
	Short: "Delete the table of contents section",
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
		updated, rep := eng.RemoveTOC(content)
		if rep.Action == "removed" {
			if err := writeDocument(args[0], updated); err != nil {
				return err
			}
		}
		render.TOCReport(cmd.OutOrStdout(), rep)
		return nil
	},
}

var tocValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Report missing and stale TOC entries",
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
		render.TOCValidation(cmd.OutOrStdout(), eng.ValidateTOC(content, tocDepth))
		return nil
	},
}

func init() {
	tocCmd.PersistentFlags().IntVar(&tocDepth, "depth", 0, "Heading levels below the root level to include (0 = config default)")
	tocCmd.AddCommand(tocUpdateCmd)
	tocCmd.AddCommand(tocRemoveCmd)
	tocCmd.AddCommand(tocValidateCmd)
	rootCmd.AddCommand(tocCmd)
}
