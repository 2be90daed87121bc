package main

import (
	"context"
	"hms-console/internal/app/services/console"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/app/services/shared/notifier"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/utils"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type listOptions struct {
	query string
	sort  string
	desc  bool
}

func (o *listOptions) bind(cmd *cobra.Command, fields []string) {
	cmd.Flags().StringVar(&o.query, "query", "", "case-insensitive filter")
	cmd.Flags().StringVar(&o.sort, "sort", "", "field to sort by, one of: "+strings.Join(fields, ", "))
	cmd.Flags().BoolVar(&o.desc, "desc", false, "sort descending")
}

func (o *listOptions) apply(view interface {
	SetQuery(string)
	SetSort(string, bool) error
}) error {
	view.SetQuery(o.query)
	if o.sort != "" {
		return view.SetSort(o.sort, o.desc)
	}
	return nil
}

// renderView prints the current rows of view as a table with the given columns.
func renderView[T any](out io.Writer, view *listview.Controller[T], columns []string) {
	fields := view.Definition().Fields
	rows := view.Rows()

	table := tablewriter.NewWriter(out)
	table.SetHeader(columns)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, row := range rows {
		line := make([]string, len(columns))
		for i, column := range columns {
			if value, ok := fields[column]; ok {
				line[i] = value(row)
			} else {
				line[i] = constvars.Placeholder
			}
		}
		table.Append(line)
	}
	table.SetFooter(footer(len(columns), len(rows)))
	table.Render()
}

func footer(columns, total int) []string {
	line := make([]string, columns)
	if columns > 0 {
		line[columns-1] = "total " + strconv.Itoa(total)
	}
	return line
}

func printJSON(out io.Writer, value interface{}) error {
	body, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = out.Write(append(body, '\n'))
	return err
}

// withSession opens a page session whose notifications go to the command's
// stderr, loads the listed collections and runs fn.
func withSession(cmd *cobra.Command, app *cliApp, resources []constvars.Resource, fn func(ctx context.Context, session *console.Session) error) error {
	ctx, requestID := utils.EnsureRequestID(cmd.Context())
	session := app.newSession(notifier.NewWriterNotifier(cmd.ErrOrStderr(), app.log))
	defer session.Close()

	return utils.LogOperation(app.log, cmd.CommandPath(), requestID, func() error {
		if len(resources) > 0 {
			if err := session.LoadAndWait(ctx, resources...); err != nil {
				return err
			}
			for _, resource := range resources {
				if err := session.Store.LoadError(resource); err != nil {
					return err
				}
			}
		}
		return fn(ctx, session)
	})
}
