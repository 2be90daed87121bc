package main

import (
	"context"
	"hms-console/internal/app/services/console"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

var appointmentColumns = []string{"id", "patientName", "doctorName", "department", "appointmentTime", "reason"}

func appointmentsCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List and schedule appointments",
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the appointment list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, []constvars.Resource{constvars.ResourceAppointments}, func(ctx context.Context, session *console.Session) error {
				if err := opts.apply(session.AppointmentView); err != nil {
					return err
				}
				renderView(cmd.OutOrStdout(), session.AppointmentView, appointmentColumns)
				return nil
			})
		},
	}
	opts.bind(listCmd, listview.AppointmentDefinition.FieldNames())

	var addSet map[string]string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule an appointment",
		Long:  "Schedule an appointment. Patient details are filled from patientId or patientName, and the doctor from doctorId or department.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources := []constvars.Resource{constvars.ResourcePatients, constvars.ResourceDoctors}
			return withSession(cmd, app, resources, func(ctx context.Context, session *console.Session) error {
				appointment, err := session.Appointments.Add(ctx, requests.FormValuesFromStrings(addSet))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), appointment)
			})
		},
	}
	addCmd.Flags().StringToStringVar(&addSet, "set", nil, "form field, repeatable (appointmentTime=2024-05-01T09:30)")

	departmentsCmd := &cobra.Command{
		Use:   "departments",
		Short: "Print the departments doctors can be picked from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, []constvars.Resource{constvars.ResourceDoctors}, func(ctx context.Context, session *console.Session) error {
				return printJSON(cmd.OutOrStdout(), session.Appointments.Departments())
			})
		},
	}

	cmd.AddCommand(listCmd, addCmd, departmentsCmd)
	return cmd
}
