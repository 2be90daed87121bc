package main

import (
	"context"
	"hms-console/internal/app/services/console"
	"hms-console/internal/app/services/listview"

	"github.com/spf13/cobra"
)

var departmentColumns = []string{"index", "name", "staffs", "appointments"}

func departmentsCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Browse the department catalogue",
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the department list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, nil, func(ctx context.Context, session *console.Session) error {
				if err := opts.apply(session.DepartmentView); err != nil {
					return err
				}
				renderView(cmd.OutOrStdout(), session.DepartmentView, departmentColumns)
				return nil
			})
		},
	}
	opts.bind(listCmd, listview.DepartmentDefinition.FieldNames())

	cmd.AddCommand(listCmd)
	return cmd
}
