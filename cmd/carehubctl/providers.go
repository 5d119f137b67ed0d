package main

import (
	"github.com/spf13/cobra"
)

func (a *app) providersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider"},
		Short:   "List providers and their schedules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := a.client.Providers(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(providers))
			for _, p := range providers {
				rows = append(rows, []string{p.ID, p.DisplayName(), p.Title, p.Specialty, p.Phone})
			}
			return a.table(providers, []string{"ID", "NAME", "TITLE", "SPECIALTY", "PHONE"}, rows)
		},
	})

	var start, end string
	schedule := &cobra.Command{
		Use:   "schedule PROVIDER_ID",
		Short: "Show a provider's appointments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := a.client.ProviderSchedule(cmd.Context(), args[0], start, end)
			if err != nil {
				return err
			}
			return a.appointmentTable(appts)
		},
	}
	schedule.Flags().StringVar(&start, "start", "", "first date, YYYY-MM-DD")
	schedule.Flags().StringVar(&end, "end", "", "last date, YYYY-MM-DD")
	cmd.AddCommand(schedule)

	return cmd
}
