package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		respondent string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored profiles, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.Recent(respondent, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored profiles.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRESPONDENT\tCORE TYPE\tSUBTYPE\tCOMPLETED")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Respondent, e.CoreType, e.Subtype, e.CompletedAt)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&respondent, "respondent", "", "only list this respondent's profiles")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of profiles (default: history_limit from config)")
	return cmd
}
