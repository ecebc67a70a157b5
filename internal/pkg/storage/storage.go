package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	app "github.com/diwise/lora-mint/internal/app/loramint"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Db struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg Config) (Db, error) {
	p, err := connect(ctx, cfg)
	if err != nil {
		return Db{}, err
	}

	err = initialize(ctx, p)
	if err != nil {
		p.Close()
		return Db{}, err
	}

	return Db{
		pool: p,
	}, nil
}

func (db Db) Close() {
	db.pool.Close()
}

func initialize(ctx context.Context, pool *pgxpool.Pool) error {
	log := logging.GetFromContext(ctx)

	ddl := `
	CREATE TABLE IF NOT EXISTS measurements (
		id          UUID         PRIMARY KEY DEFAULT gen_random_uuid(),
		device_eui  VARCHAR(16)  NOT NULL,
		measurand   VARCHAR(40)  NOT NULL,
		unit        VARCHAR(40)  NOT NULL,
		datatype    VARCHAR(10)  NOT NULL CHECK (datatype IN ('float', 'integer', 'string')),
		sensor      VARCHAR(40)  NOT NULL,
		location    VARCHAR(40)  NOT NULL,
		value       TEXT         NOT NULL,
		time_method VARCHAR(10)  NOT NULL CHECK (time_method IN ('server', 'custom', 'none')),
		recorded_at TIMESTAMPTZ  NULL,
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT now(),
		CHECK ((time_method = 'none') = (recorded_at IS NULL))
	);

	CREATE INDEX IF NOT EXISTS measurements_created_at_idx ON measurements (created_at DESC, id DESC);
	CREATE INDEX IF NOT EXISTS measurements_device_eui_idx ON measurements (device_eui, created_at DESC);

	CREATE TABLE IF NOT EXISTS log_entries (
		id          UUID         PRIMARY KEY DEFAULT gen_random_uuid(),
		device_eui  VARCHAR(16)  NOT NULL,
		message     VARCHAR(200) NOT NULL,
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS log_entries_created_at_idx ON log_entries (created_at DESC, id DESC);
	CREATE INDEX IF NOT EXISTS log_entries_device_eui_idx ON log_entries (device_eui, created_at DESC);
	`

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Error("could not begin transaction", "err", err.Error())
		return err
	}

	_, err = tx.Exec(ctx, ddl)
	if err != nil {
		log.Error("could not execute ddl statement", "err", err.Error())
		tx.Rollback(ctx)
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		log.Error("could not commit transaction", "err", err.Error())
		return err
	}

	return nil
}

func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = conn.Ping(ctx)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return conn, err
}

func (db Db) AddMeasurement(ctx context.Context, m app.ValidatedMeasurement) (app.Measurement, error) {
	log := logging.GetFromContext(ctx)

	insert := `INSERT INTO measurements(device_eui, measurand, unit, datatype, sensor, location, value, time_method, recorded_at)
			   VALUES (@device_eui, @measurand, @unit, @datatype, @sensor, @location, @value, @time_method, @recorded_at)
			   RETURNING ` + measurementColumns

	rows, err := db.pool.Query(ctx, insert, pgx.NamedArgs{
		"device_eui":  m.DeviceEUI,
		"measurand":   m.Measurand,
		"unit":        m.Unit,
		"datatype":    string(m.Datatype),
		"sensor":      m.Sensor,
		"location":    m.Location,
		"value":       m.Value,
		"time_method": string(m.TimeMethod),
		"recorded_at": m.RecordedAt,
	})
	if err != nil {
		return app.Measurement{}, insertErr(log, err)
	}

	stored, err := pgx.CollectExactlyOneRow(rows, scanMeasurement)
	if err != nil {
		return app.Measurement{}, insertErr(log, err)
	}

	return stored, nil
}

func (db Db) AddLogEntry(ctx context.Context, l app.ValidatedLogEntry) (app.LogEntry, error) {
	log := logging.GetFromContext(ctx)

	insert := `INSERT INTO log_entries(device_eui, message) VALUES (@device_eui, @message) RETURNING ` + logEntryColumns

	rows, err := db.pool.Query(ctx, insert, pgx.NamedArgs{
		"device_eui": l.DeviceEUI,
		"message":    l.Message,
	})
	if err != nil {
		return app.LogEntry{}, insertErr(log, err)
	}

	stored, err := pgx.CollectExactlyOneRow(rows, scanLogEntry)
	if err != nil {
		return app.LogEntry{}, insertErr(log, err)
	}

	return stored, nil
}

func (db Db) QueryMeasurements(ctx context.Context, conditions ...app.ConditionFunc) (app.QueryResult[app.Measurement], error) {
	return query(ctx, db.pool, "measurements", measurementColumns, scanMeasurement, conditions...)
}

func (db Db) QueryLogEntries(ctx context.Context, conditions ...app.ConditionFunc) (app.QueryResult[app.LogEntry], error) {
	return query(ctx, db.pool, "log_entries", logEntryColumns, scanLogEntry, conditions...)
}

// ExportMeasurements renders every stored measurement, newest first, as CSV. id breaks ties on created_at.
func (db Db) ExportMeasurements(ctx context.Context) (string, error) {
	log := logging.GetFromContext(ctx)

	rows, err := db.pool.Query(ctx, `SELECT `+measurementColumns+` FROM measurements ORDER BY created_at DESC, id DESC`)
	if err != nil {
		log.Error("could not query measurements for export", "err", err.Error())
		return "", err
	}

	measurements, err := pgx.CollectRows(rows, scanMeasurement)
	if err != nil {
		log.Error("could not collect measurements for export", "err", err.Error())
		return "", err
	}

	return measurementsToCSV(measurements), nil
}

// query fetches one window of rows and, in a separate statement, the total number of matching rows.
// The two statements do not share a transaction, so under concurrent inserts the total may be
// slightly newer than the window.
func query[T any](ctx context.Context, pool *pgxpool.Pool, table, columns string, scan pgx.RowToFunc[T], conditions ...app.ConditionFunc) (app.QueryResult[T], error) {
	log := logging.GetFromContext(ctx)

	where, window, args := newQueryParams(conditions...)

	rows, err := pool.Query(ctx, fmt.Sprintf("SELECT %s FROM %s %s%s", columns, table, where, window), args)
	if err != nil {
		log.Error("could not execute query", "table", table, "err", err.Error())
		return app.QueryResult[T]{}, err
	}

	data, err := pgx.CollectRows(rows, scan)
	if err != nil {
		log.Error("could not collect rows", "table", table, "err", err.Error())
		return app.QueryResult[T]{}, err
	}

	var total int64
	err = pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s %s", table, where), args).Scan(&total)
	if err != nil {
		log.Error("could not count rows", "table", table, "err", err.Error())
		return app.QueryResult[T]{}, err
	}

	offset, _ := args["offset"].(int)
	limit, _ := args["limit"].(int)

	return app.QueryResult[T]{
		Data:       data,
		Count:      len(data),
		Offset:     offset,
		Limit:      limit,
		TotalCount: total,
	}, nil
}

func scanMeasurement(row pgx.CollectableRow) (app.Measurement, error) {
	var m app.Measurement
	var datatype, timeMethod string

	err := row.Scan(&m.ID, &m.DeviceEUI, &m.Measurand, &m.Unit, &datatype, &m.Sensor, &m.Location, &m.Value, &timeMethod, &m.RecordedAt, &m.CreatedAt)
	if err != nil {
		return app.Measurement{}, err
	}

	m.Datatype = app.Datatype(datatype)
	m.TimeMethod = app.TimeMethod(timeMethod)
	m.CreatedAt = m.CreatedAt.UTC()

	if m.RecordedAt != nil {
		recordedAt := m.RecordedAt.UTC()
		m.RecordedAt = &recordedAt
	}

	return m, nil
}

func scanLogEntry(row pgx.CollectableRow) (app.LogEntry, error) {
	var l app.LogEntry

	err := row.Scan(&l.ID, &l.DeviceEUI, &l.Message, &l.CreatedAt)
	if err != nil {
		return app.LogEntry{}, err
	}

	l.CreatedAt = l.CreatedAt.UTC()

	return l, nil
}

func insertErr(log *slog.Logger, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		log.Debug("insert statement failed", "err", pgErr.Error(), "code", pgErr.Code, "message", pgErr.Message)
	}

	if isIntegrityViolation(err) {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	log.Error("could not execute statement", "err", err.Error())
	return err
}
