package cmd

import (
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/spf13/cobra"
)

var wrapWidth int

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Formatting and lint commands",
}

var fmtRewrapCmd = &cobra.Command{
	Use:   "rewrap FILE",
	Short: "Rewrap paragraphs to a target width",
	Long: `Rewrap joins and re-wraps plain paragraph text. Headings, lists, block
quotes, tables, and code blocks are never touched.`,
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
		res := eng.Rewrap(content, wrapWidth)
		if res.Modified {
			if err := writeDocument(args[0], res.Content); err != nil {
				return err
			}
		}
		render.Rewrap(cmd.OutOrStdout(), res, wrapWidth)
		return nil
	},
}

var fmtLintCmd = &cobra.Command{
	Use:   "lint FILE",
	Short: "Scan for markdown issues",
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
		render.LintIssues(cmd.OutOrStdout(), eng.Lint(content))
		return nil
	},
}

var fmtFixCmd = &cobra.Command{
	Use:   "fix FILE",
	Short: "Auto-fix markdown issues where possible",
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
		res := eng.Fix(content)
		if res.Fixed {
			if err := writeDocument(args[0], res.Content); err != nil {
				return err
			}
		}
		render.FixReport(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	fmtRewrapCmd.Flags().IntVar(&wrapWidth, "width", 0, "Maximum line width (0 = config default)")
	fmtCmd.AddCommand(fmtRewrapCmd)
	fmtCmd.AddCommand(fmtLintCmd)
	fmtCmd.AddCommand(fmtFixCmd)
	rootCmd.AddCommand(fmtCmd)
}
