package cli

import (
	"fmt"

	"github.com/alexanderramin/astroverse/internal/catalog"
	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/alexanderramin/astroverse/internal/roadmap"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(app *App) *cobra.Command {
	var output formatter.Format
	var stage int

	cmd := &cobra.Command{
		Use:   "roadmap [career-id]",
		Short: "Print the education roadmap for a career",
		Long: `Print the six-stage education roadmap for a career.

Without a career id an interactive terminal is prompted to pick one.
Use --stage to print a single stage (1 = High School ... 6 = Career Path).`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, c := range app.catalog().Careers() {
				ids = append(ids, string(c.ID))
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCareerArg(app, args)
			if err != nil {
				return err
			}
			career, err := app.catalog().Lookup(id)
			if err != nil {
				return err
			}

			doc := formatter.RoadmapDocument{Career: career, Stages: roadmap.Generate(career.ID)}
			if cmd.Flags().Changed("stage") {
				s, err := roadmap.LookupStage(career.ID, domain.Stage(stage))
				if err != nil {
					return err
				}
				doc.Stages = []domain.RoadmapStage{s}
			}
			return formatter.WriteRoadmap(cmd.OutOrStdout(), doc, output)
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	cmd.Flags().IntVarP(&stage, "stage", "s", 0, "print only this stage (1-6)")
	return cmd
}

// resolveCareerArg returns the catalog id named by args, or prompts for one
// on an interactive terminal.
func resolveCareerArg(app *App, args []string) (domain.CareerID, error) {
	if len(args) == 1 {
		id, ok := app.catalog().ParseCareerID(args[0])
		if !ok {
			return "", fmt.Errorf("%q: %w", args[0], catalog.ErrUnknownCareer)
		}
		return id, nil
	}
	if !app.interactive() {
		return "", fmt.Errorf("career id required when not running in a terminal")
	}
	pick := app.PickCareer
	if pick == nil {
		pick = pickCareer
	}
	id, err := pick(app.catalog())
	if err != nil {
		return "", fmt.Errorf("picking career: %w", err)
	}
	return id, nil
}
