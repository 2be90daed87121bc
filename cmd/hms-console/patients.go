package main

import (
	"context"
	"hms-console/internal/app/services/console"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

var patientColumns = []string{"id", "name", "age", "gender", "bloodGroup", "contact", "email", "appointments"}

func patientsCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List and manage patients",
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the patient list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, []constvars.Resource{constvars.ResourcePatients}, func(ctx context.Context, session *console.Session) error {
				if err := opts.apply(session.PatientView); err != nil {
					return err
				}
				renderView(cmd.OutOrStdout(), session.PatientView, patientColumns)
				return nil
			})
		},
	}
	opts.bind(listCmd, listview.PatientDefinition.FieldNames())

	var addSet map[string]string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, nil, func(ctx context.Context, session *console.Session) error {
				patient, err := session.Patients.Add(ctx, requests.FormValuesFromStrings(addSet))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), patient)
			})
		},
	}
	addCmd.Flags().StringToStringVar(&addSet, "set", nil, "form field, repeatable (name=Jane)")

	var updateSet map[string]string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a patient's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, []constvars.Resource{constvars.ResourcePatients}, func(ctx context.Context, session *console.Session) error {
				patient, err := session.Patients.Update(ctx, args[0], requests.FormValuesFromStrings(updateSet))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), patient)
			})
		},
	}
	updateCmd.Flags().StringToStringVar(&updateSet, "set", nil, "form field to change, repeatable")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, []constvars.Resource{constvars.ResourcePatients}, func(ctx context.Context, session *console.Session) error {
				return session.Patients.Delete(ctx, args[0])
			})
		},
	}

	cmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
	return cmd
}
