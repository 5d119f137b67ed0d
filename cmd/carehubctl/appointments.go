package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/carehub-api/internal/model"
)

func (a *app) appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appointment", "appt"},
		Short:   "Browse, book and cancel appointments",
	}
	cmd.AddCommand(a.appointmentsListCmd())
	cmd.AddCommand(a.appointmentsCreateCmd())
	cmd.AddCommand(a.appointmentsUpdateCmd())
	cmd.AddCommand(a.appointmentsCancelCmd())
	cmd.AddCommand(a.appointmentsConflictsCmd())
	return cmd
}

func (a *app) appointmentTable(appts []*model.Appointment) error {
	rows := make([][]string, 0, len(appts))
	for _, ap := range appts {
		rows = append(rows, []string{ap.ID, ap.Date, ap.StartTime + "-" + ap.EndTime, ap.PatientName, ap.ProviderName, string(ap.Type), string(ap.Status), ap.Room})
	}
	return a.table(appts, []string{"ID", "DATE", "TIME", "PATIENT", "PROVIDER", "TYPE", "STATUS", "ROOM"}, rows)
}

func (a *app) appointmentsListCmd() *cobra.Command {
	var f model.AppointmentFilters
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments in date order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := a.client.Appointments(cmd.Context(), f)
			if err != nil {
				return err
			}
			return a.appointmentTable(appts)
		},
	}
	cmd.Flags().StringVar(&f.StartDate, "start", "", "first date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.EndDate, "end", "", "last date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.ProviderID, "provider", "", "provider id")
	return cmd
}

func (a *app) appointmentsCreateCmd() *cobra.Command {
	var (
		req        model.CreateAppointmentRequest
		apptType   string
		checkFirst bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Type = model.AppointmentType(apptType)
			if checkFirst && req.Date != "" && req.StartTime != "" {
				res, err := a.client.CheckConflicts(cmd.Context(), model.ConflictQuery{Date: req.Date, StartTime: req.StartTime})
				if err != nil {
					return err
				}
				if res.Conflict {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d appointment(s) already start in that hour\n", len(res.Appointments))
				}
			}
			appt, err := a.client.CreateAppointment(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(appt)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&req.PatientID, "patient", "", "patient id")
	fl.StringVar(&req.PatientName, "patient-name", "", "patient display name")
	fl.StringVar(&req.ProviderID, "provider", "", "provider id")
	fl.StringVar(&req.ProviderName, "provider-name", "", "provider display name")
	fl.StringVar(&req.Date, "date", today(), "date, YYYY-MM-DD")
	fl.StringVar(&req.StartTime, "start", "", "start time, HH:MM")
	fl.StringVar(&req.EndTime, "end", "", "end time, HH:MM")
	fl.StringVar(&apptType, "type", "", "check-up, follow-up, urgent, procedure, consultation or telehealth")
	fl.StringVar(&req.Room, "room", "", "room")
	fl.StringVar(&req.Reason, "reason", "", "reason for visit")
	fl.BoolVar(&checkFirst, "check-conflicts", true, "warn when the slot is already booked")
	return cmd
}

func (a *app) appointmentsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update APPOINTMENT_ID",
		Short: "Reschedule or change the status of an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := map[string]string{}
			for _, field := range []string{"date", "startTime", "endTime", "status", "room", "notes"} {
				if cmd.Flags().Changed(field) {
					v, _ := cmd.Flags().GetString(field)
					patch[field] = v
				}
			}
			if len(patch) == 0 {
				return fmt.Errorf("nothing to update")
			}
			appt, err := a.client.UpdateAppointment(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return a.printJSON(appt)
		},
	}
	fl := cmd.Flags()
	fl.String("date", "", "date, YYYY-MM-DD")
	fl.String("startTime", "", "start time, HH:MM")
	fl.String("endTime", "", "end time, HH:MM")
	fl.String("status", "", "scheduled, confirmed, in-progress, completed, cancelled or no-show")
	fl.String("room", "", "room")
	fl.String("notes", "", "free-text notes")
	return cmd
}

func (a *app) appointmentsCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel APPOINTMENT_ID",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.CancelAppointment(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "cancelled %s\n", args[0])
			return nil
		},
	}
}

func (a *app) appointmentsConflictsCmd() *cobra.Command {
	var q model.ConflictQuery
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Show appointments starting in the same hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.CheckConflicts(cmd.Context(), q)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res)
			}
			if !res.Conflict {
				fmt.Fprintln(a.out, "no conflicts")
				return nil
			}
			return a.appointmentTable(res.Appointments)
		},
	}
	cmd.Flags().StringVar(&q.Date, "date", today(), "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&q.StartTime, "start", "", "start time, HH:MM")
	cmd.Flags().StringVar(&q.ExcludeID, "exclude", "", "appointment id to ignore")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}
