package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Recorder приемник метрик; *metrics.Metrics реализует его
type Recorder interface {
	ObserveDBQuery(operation string, seconds float64, err error)
	SetDBPoolStats(open, inUse, idle int)
}

const poolStatsInterval = 15 * time.Second

// DB *sql.DB с замером времени каждого запроса
type DB struct {
	db  *sql.DB
	rec Recorder
}

// Wrap оборачивает db. rec может быть nil.
func Wrap(db *sql.DB, rec Recorder) *DB {
	return &DB{db: db, rec: rec}
}

// WrapWithDefault оборачивает db и публикует состояние пула до закрытия stopCh
func WrapWithDefault(db *sql.DB, rec Recorder, stopCh <-chan struct{}) *DB {
	d := Wrap(db, rec)
	go d.collectPoolStats(stopCh)
	return d
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	if d.rec == nil {
		return
	}
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		d.reportPoolStats()
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) reportPoolStats() {
	stats := d.db.Stats()
	d.rec.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
}

func (d *DB) observe(query string, started time.Time, err error) {
	observe(d.rec, query, started, err)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	started := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, started, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, started, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, started, row.Err())
	return row
}

// BeginTx начинает транзакцию, запросы которой тоже учитываются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, rec: d.rec}, nil
}

// Tx транзакция с замером времени запросов
type Tx struct {
	tx  *sql.Tx
	rec Recorder
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	started := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	observe(t.rec, query, started, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	observe(t.rec, query, started, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	observe(t.rec, query, started, row.Err())
	return row
}

func (t *Tx) Commit() error {
	started := time.Now()
	err := t.tx.Commit()
	observe(t.rec, "commit", started, err)
	return err
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func observe(rec Recorder, query string, started time.Time, err error) {
	if rec == nil {
		return
	}
	if err == sql.ErrNoRows || err == sql.ErrTxDone {
		err = nil
	}
	rec.ObserveDBQuery(operationOf(query), time.Since(started).Seconds(), err)
}

// operationOf возвращает тип запроса: select, insert, update, delete...
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
