package controllers

import (
	"hms-console/internal/app/services/listview"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/dto/responses"
	"hms-console/internal/pkg/exceptions"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// listChange reads the q, sort and order query parameters. Parameters that
// are absent leave the view state as it was.
func listChange(r *http.Request) listview.Change {
	params := r.URL.Query()
	var change listview.Change
	if params.Has(constvars.URLQueryParamQuery) {
		query := params.Get(constvars.URLQueryParamQuery)
		change.Query = &query
	}

	change.SortField = params.Get(constvars.URLQueryParamSort)
	if change.SortField != "" || params.Has(constvars.URLQueryParamOrder) {
		desc := params.Get(constvars.URLQueryParamOrder) == constvars.SortOrderDesc
		change.Desc = &desc
	}
	return change
}

func buildListView[T any](snapshot listview.Snapshot[T]) responses.ListView {
	return responses.ListView{
		Query: snapshot.Query,
		Sort:  snapshot.Sort.Field,
		Order: snapshot.Sort.Order(),
		Total: len(snapshot.Rows),
		Rows:  snapshot.Rows,
	}
}

// decodeFormBody reads a JSON object of form fields. An empty body is an empty form.
func decodeFormBody(r *http.Request) (requests.FormValues, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	values := requests.FormValues{}
	if len(body) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return values, nil
}
