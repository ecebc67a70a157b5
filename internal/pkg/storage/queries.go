package storage

import (
	app "github.com/diwise/lora-mint/internal/app/loramint"
	"github.com/jackc/pgx/v5"
)

func newConditions(conditions ...app.ConditionFunc) map[string]any {
	m := make(map[string]any)

	for _, f := range conditions {
		m = f(m)
	}

	if _, ok := m["limit"]; !ok {
		m["limit"] = app.DefaultPerPage
	}

	if _, ok := m["offset"]; !ok {
		m["offset"] = 0
	}

	return m
}

// newQueryParams returns the WHERE clause shared by the page and the count query and the
// ORDER/LIMIT/OFFSET tail that only applies to the page query.
func newQueryParams(conditions ...app.ConditionFunc) (string, string, pgx.NamedArgs) {
	c := newConditions(conditions...)

	where := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if deviceEUI, ok := c["device_eui"]; ok {
		where += " AND device_eui=@device_eui"
		args["device_eui"] = deviceEUI
	}

	window := " ORDER BY created_at DESC, id DESC"

	if offset, ok := c["offset"]; ok {
		window += " OFFSET @offset"
		args["offset"] = offset
	}

	if limit, ok := c["limit"]; ok {
		window += " LIMIT @limit"
		args["limit"] = limit
	}

	return where, window, args
}
