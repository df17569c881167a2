package cmd

import (
	"github.com/itsmostafa/mdstruct/internal/render"
	"github.com/spf13/cobra"
)

var (
	sectionRef    string
	targetRef     string
	positionFlag  string
	insertHeading string
	insertLevel   int
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Structure-preserving section edits",
	Long: `Section commands move, insert, delete, promote, and demote sections. A
section is referenced by its current number ("3.2") or its exact title.

Every edit keeps line offsets and nesting consistent but leaves numbering
stale on purpose; run 'renumber' once a batch of edits is complete.`,
}

var sectionMoveCmd = &cobra.Command{
	Use:   "move FILE",
	Short: "Move a section (with its subtree) before or after a target",
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
		updated, res, err := eng.Move(content, sectionRef, positionFlag, targetRef)
		if err != nil {
			return err
		}
		if err := writeDocument(args[0], updated); err != nil {
			return err
		}
		render.OpResult(cmd.OutOrStdout(), "Moved", res)
		return nil
	},
}

var sectionInsertCmd = &cobra.Command{
	Use:   "insert FILE",
	Short: "Insert a new empty section next to a target",
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
		updated, res, err := eng.Insert(content, insertHeading, insertLevel, positionFlag, targetRef)
		if err != nil {
			return err
		}
		if err := writeDocument(args[0], updated); err != nil {
			return err
		}
		render.OpResult(cmd.OutOrStdout(), "Inserted", res)
		return nil
	},
}

var sectionDeleteCmd = &cobra.Command{
	Use:   "delete FILE",
	Short: "Delete a section and all of its descendants",
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
		updated, res, err := eng.Delete(content, sectionRef)
		if err != nil {
			return err
		}
		if err := writeDocument(args[0], updated); err != nil {
			return err
		}
		render.OpResult(cmd.OutOrStdout(), "Deleted", res)
		return nil
	},
}

var sectionPromoteCmd = &cobra.Command{
	Use:   "promote FILE",
	Short: "Shift a section and its descendants one level shallower",
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
		updated, res, err := eng.Promote(content, sectionRef)
		if err != nil {
			return err
		}
		if err := writeDocument(args[0], updated); err != nil {
			return err
		}
		render.OpResult(cmd.OutOrStdout(), "Promoted", res)
		return nil
	},
}

var sectionDemoteCmd = &cobra.Command{
	Use:   "demote FILE",
	Short: "Shift a section and its descendants one level deeper",
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
		updated, res, err := eng.Demote(content, sectionRef)
		if err != nil {
			return err
		}
		if err := writeDocument(args[0], updated); err != nil {
			return err
		}
		render.OpResult(cmd.OutOrStdout(), "Demoted", res)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{sectionMoveCmd, sectionDeleteCmd, sectionPromoteCmd, sectionDemoteCmd} {
		c.Flags().StringVar(&sectionRef, "section", "", "Section to operate on, by number or exact title")
		_ = c.MarkFlagRequired("section")
	}
	for _, c := range []*cobra.Command{sectionMoveCmd, sectionInsertCmd} {
		c.Flags().StringVar(&positionFlag, "position", "", `"before" or "after" the target`)
		c.Flags().StringVar(&targetRef, "target", "", "Target section, by number or exact title")
		_ = c.MarkFlagRequired("position")
		_ = c.MarkFlagRequired("target")
	}
	sectionInsertCmd.Flags().StringVar(&insertHeading, "heading", "", "Title for the new section")
	sectionInsertCmd.Flags().IntVar(&insertLevel, "level", 2, "Heading level for the new section (2-6)")
	_ = sectionInsertCmd.MarkFlagRequired("heading")

	sectionCmd.AddCommand(sectionMoveCmd)
	sectionCmd.AddCommand(sectionInsertCmd)
	sectionCmd.AddCommand(sectionDeleteCmd)
	sectionCmd.AddCommand(sectionPromoteCmd)
	sectionCmd.AddCommand(sectionDemoteCmd)
	rootCmd.AddCommand(sectionCmd)
}
