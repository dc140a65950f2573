// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rgex/groupdb"
	"github.com/katalvlaran/rgex/internal/ux"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		dbPath string
		group  string
		reps   int
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show gauge-group and representation data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := groupdb.NewGroup(group, group, groupdb.NewYAMLStore(dbPath))
			if err != nil {
				return err
			}
			if err = g.MoreInfo(reps); err != nil {
				return err
			}
			for _, l := range labels {
				parsed, err := groupdb.ParseLabels(l)
				if err != nil {
					return err
				}
				dim, err := g.DimR(parsed)
				if err != nil {
					return err
				}
				a.logger.Debug("representation read", zap.String("labels", parsed.String()), zap.Int("dim", dim))
			}
			a.logger.Debug("group inspected", zap.String("group", g.Type), zap.Int("reps", len(g.Reps())))

			_, err = fmt.Fprint(cmd.OutOrStdout(), ux.GroupSummary(g))
			return err
		},
	}
	cmd.Flags().StringVar(&dbPath, "groups", "", "group database (YAML)")
	cmd.Flags().StringVarP(&group, "group", "g", "", "group type, e.g. SU3")
	cmd.Flags().IntVar(&reps, "reps", 5, "number of smallest dimensions to list")
	cmd.Flags().StringArrayVarP(&labels, "rep", "r", nil, "extra representation by Dynkin labels, e.g. 1,1")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}
