package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groupform-server-go/commentary"
	"groupform-server-go/db"
	"groupform-server-go/export"
	"groupform-server-go/pipeline"
	"groupform-server-go/view"
)

var (
	formSize         int
	formOut          string
	formNoCommentary bool
	formWidth        int
)

var formCmd = &cobra.Command{
	Use:   "form <roster.xlsx>",
	Short: "Form groups from a roster workbook and write the result workbook",
	Long: `Reads a workbook whose first sheet has a header row followed by
name and score columns, forms groups, prints them, and writes one sheet
per group to --out.

--size decides how many groups are formed (students / size, rounded up).
Students are then dealt evenly, so groups may be smaller than --size.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size := formSize
		if !cmd.Flags().Changed("size") {
			size = cfg.Grouping.DefaultSize
		}

		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open roster: %w", err)
		}
		defer in.Close()

		students, err := db.ImportRosterFromExcel(in, logger)
		if err != nil {
			return err
		}

		var gen commentary.Generator
		if !formNoCommentary {
			gen, err = commentary.New(cfg.Commentary)
			if err != nil {
				return err
			}
		}

		svc := pipeline.NewService(gen, nil, logger)
		res, err := svc.Form(cmd.Context(), students, size, pipeline.Options{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, view.RenderTables(res.Tables))

		switch {
		case res.CommentaryErr != nil:
			// Groups are still valid; report and carry on to the export.
			logger.Error("commentary unavailable", zap.Error(res.CommentaryErr))
			fmt.Fprintf(cmd.ErrOrStderr(), "commentary unavailable: %v\n", res.CommentaryErr)
		case res.Commentary != "":
			rendered, err := view.RenderCommentary(res.Commentary, formWidth)
			if err != nil {
				rendered = res.Commentary
			}
			fmt.Fprint(out, "\n"+rendered)
		}

		if len(res.Tables) == 0 {
			return nil
		}

		f, err := os.Create(formOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", formOut, err)
		}
		if err := svc.Export(f, res); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", formOut, err)
		}
		fmt.Fprintf(out, "\nWrote %d groups to %s\n", len(res.Tables), formOut)
		return nil
	},
}

func init() {
	formCmd.Flags().IntVarP(&formSize, "size", "s", 4, "Group size used to decide the number of groups")
	formCmd.Flags().StringVarP(&formOut, "out", "o", export.DefaultFilename, "Output workbook path")
	formCmd.Flags().BoolVar(&formNoCommentary, "no-commentary", false, "Skip the commentary request")
	formCmd.Flags().IntVar(&formWidth, "width", 80, "Wrap width for commentary")
}
