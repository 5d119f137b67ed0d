package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/pkg/client"
)

func (a *app) notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "notif"},
		Short:   "Read and acknowledge notifications",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.Notifications(cmd.Context())
			if err != nil {
				return err
			}
			return a.notificationTable(list)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read NOTIFICATION_ID",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.client.MarkNotificationRead(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(n)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.MarkAllNotificationsRead(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "all notifications marked as read")
			return nil
		},
	})

	var interval time.Duration
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Poll for notifications until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.client.PollNotifications(cmd.Context(), interval, func(list []*model.Notification, err error) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "poll failed: %v\n", err)
					return
				}
				unread := 0
				for _, n := range list {
					if !n.Read {
						unread++
					}
				}
				fmt.Fprintf(a.out, "%s  %d unread of %d\n", time.Now().Format(time.TimeOnly), unread, len(list))
			})
			if cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
	watch.Flags().DurationVar(&interval, "interval", client.DefaultPollInterval, "poll interval")
	cmd.AddCommand(watch)

	return cmd
}

func (a *app) notificationTable(list []*model.Notification) error {
	rows := make([][]string, 0, len(list))
	for _, n := range list {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		rows = append(rows, []string{mark, n.ID, string(n.Type), n.CreatedAt, n.Title})
	}
	return a.table(list, []string{"", "ID", "TYPE", "CREATED", "TITLE"}, rows)
}
