package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/carehub-api/internal/model"
)

func (a *app) patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patients",
		Aliases: []string{"patient", "pt"},
		Short:   "Browse and update patients",
	}
	cmd.AddCommand(a.patientsListCmd())
	cmd.AddCommand(a.patientsGetCmd())
	cmd.AddCommand(a.patientsUpdateCmd())
	cmd.AddCommand(a.patientsAppointmentsCmd())
	cmd.AddCommand(a.patientsVitalsCmd())
	cmd.AddCommand(a.patientsNotesCmd())
	cmd.AddCommand(a.patientsAddNoteCmd())
	return cmd
}

func (a *app) patientsListCmd() *cobra.Command {
	var (
		f        model.PatientFilters
		upcoming bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients with filters, sorting and paging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("upcoming") {
				f.HasUpcoming = &upcoming
			}
			page, err := a.client.Patients(cmd.Context(), f)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(page.Data))
			for _, p := range page.Data {
				rows = append(rows, []string{p.ID, p.MRN, p.LastName + ", " + p.FirstName, p.DateOfBirth, string(p.Status), string(p.RiskLevel), p.PrimaryProviderID})
			}
			if err := a.table(page, []string{"ID", "MRN", "NAME", "DOB", "STATUS", "RISK", "PROVIDER"}, rows); err != nil {
				return err
			}
			if !a.asJSON {
				fmt.Fprintf(a.out, "page %d/%d, %d total\n", page.Pagination.Page, page.Pagination.TotalPages, page.Pagination.Total)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.Search, "search", "s", "", "match name, MRN or date of birth")
	fl.StringVar(&f.Status, "status", "", "active, inactive or deceased")
	fl.StringVar(&f.Provider, "provider", "", "primary provider id")
	fl.BoolVar(&upcoming, "upcoming", false, "only patients with an appointment today or later")
	fl.StringVar(&f.RiskLevel, "risk", "", "low, medium, high or critical")
	fl.IntVar(&f.Page, "page", 1, "page number")
	fl.IntVar(&f.Limit, "limit", 10, "page size")
	fl.StringVar(&f.SortBy, "sort-by", "lastName", "patient field to sort on")
	fl.StringVar(&f.SortOrder, "order", "asc", "asc or desc")
	return cmd
}

func (a *app) patientsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get PATIENT_ID",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.Patient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(p)
		},
	}
}

func (a *app) patientsUpdateCmd() *cobra.Command {
	var phone, email, status, risk string
	cmd := &cobra.Command{
		Use:   "update PATIENT_ID",
		Short: "Change contact details, status or risk level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := map[string]string{}
			for flag, field := range map[string]string{"phone": "phone", "email": "email", "status": "status", "risk": "riskLevel"} {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					patch[field] = v
				}
			}
			if len(patch) == 0 {
				return fmt.Errorf("nothing to update")
			}
			p, err := a.client.UpdatePatient(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return a.printJSON(p)
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&status, "status", "", "active, inactive or deceased")
	cmd.Flags().StringVar(&risk, "risk", "", "low, medium, high or critical")
	return cmd
}

func (a *app) patientsAppointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments PATIENT_ID",
		Short: "List a patient's appointments, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := a.client.PatientAppointments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.appointmentTable(appts)
		},
	}
}

func (a *app) patientsVitalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vitals PATIENT_ID",
		Short: "List a patient's vital signs, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vitals, err := a.client.PatientVitals(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(vitals))
			for _, v := range vitals {
				rows = append(rows, []string{
					v.Date,
					fmt.Sprintf("%d/%d", v.BloodPressureSystolic, v.BloodPressureDiastolic),
					strconv.Itoa(v.HeartRate),
					strconv.FormatFloat(v.Temperature, 'f', 1, 64),
					strconv.Itoa(v.OxygenSaturation),
					strconv.Itoa(v.Weight),
					v.RecordedBy,
				})
			}
			return a.table(vitals, []string{"DATE", "BP", "HR", "TEMP", "SPO2", "WEIGHT", "RECORDED BY"}, rows)
		},
	}
}

func (a *app) patientsNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes PATIENT_ID",
		Short: "List a patient's clinical notes, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.client.PatientNotes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(notes))
			for _, n := range notes {
				rows = append(rows, []string{n.ID, n.Date, string(n.Type), n.ProviderName, n.Title})
			}
			return a.table(notes, []string{"ID", "DATE", "TYPE", "PROVIDER", "TITLE"}, rows)
		},
	}
}

func (a *app) patientsAddNoteCmd() *cobra.Command {
	var req model.CreateNoteRequest
	var noteType string
	cmd := &cobra.Command{
		Use:   "add-note PATIENT_ID",
		Short: "Write a clinical note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Type = model.NoteType(noteType)
			note, err := a.client.CreateNote(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return a.printJSON(note)
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "note title")
	cmd.Flags().StringVar(&req.Content, "content", "", "note body")
	cmd.Flags().StringVar(&noteType, "type", "", "progress, soap, procedure, discharge or referral")
	return cmd
}
