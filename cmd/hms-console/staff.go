package main

import (
	"context"
	"hms-console/internal/app/services/console"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/exceptions"

	"github.com/spf13/cobra"
)

var staffResources = []constvars.Resource{constvars.ResourceDoctors, constvars.ResourceNurses}

var staffColumns = map[constvars.Resource][]string{
	constvars.ResourceDoctors: {"id", "name", "specialization", "department", "contact", "email", "experience", "shift"},
	constvars.ResourceNurses:  {"id", "name", "assignedDoctor", "department", "contact", "email", "experience", "shift"},
}

func staffCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "List and manage doctors and nurses",
	}

	var opts listOptions
	var staffType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the doctors or nurses list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resource := constvars.Resource(staffType)
			return withSession(cmd, app, []constvars.Resource{resource}, func(ctx context.Context, session *console.Session) error {
				view, ok := session.StaffView(resource)
				if !ok {
					return exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamType)
				}
				if err := opts.apply(view); err != nil {
					return err
				}
				renderView(cmd.OutOrStdout(), view, staffColumns[resource])
				return nil
			})
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := staffColumns[constvars.Resource(staffType)]; !ok {
				return exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamType)
			}
			return nil
		},
	}
	opts.bind(listCmd, listview.StaffDefinition(constvars.ResourceDoctors).FieldNames())
	listCmd.Flags().StringVar(&staffType, "type", string(constvars.ResourceDoctors), "doctors or nurses")

	var addSet map[string]string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a doctor or nurse, chosen by the position field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, nil, func(ctx context.Context, session *console.Session) error {
				staff, err := session.Staff.Add(ctx, requests.FormValuesFromStrings(addSet))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), staff)
			})
		},
	}
	addCmd.Flags().StringToStringVar(&addSet, "set", nil, "form field, repeatable (position=Doctor)")

	var updateSet map[string]string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a staff member's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, staffResources, func(ctx context.Context, session *console.Session) error {
				staff, err := session.Staff.Update(ctx, args[0], requests.FormValuesFromStrings(updateSet))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), staff)
			})
		},
	}
	updateCmd.Flags().StringToStringVar(&updateSet, "set", nil, "form field to change, repeatable")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, staffResources, func(ctx context.Context, session *console.Session) error {
				return session.Staff.Delete(ctx, args[0])
			})
		},
	}

	cmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
	return cmd
}
