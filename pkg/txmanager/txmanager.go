// Package txmanager выполняет функции в SERIALIZABLE транзакции PostgreSQL
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
)

var (
	// ErrTransaction ошибка начала или фиксации транзакции
	ErrTransaction = errors.New("txmanager: transaction error")
)

// DefaultMaxAttempts количество попыток при конфликте сериализации
const DefaultMaxAttempts = 3

// serializationFailure SQLSTATE 40001
const serializationFailure = "40001"

// TxBeginner начинает транзакцию; *dbmetrics.DB реализует его
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db          TxBeginner
	maxAttempts int
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db, maxAttempts: DefaultMaxAttempts}
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции, доступной через контекст.
// При ошибке сериализации транзакция повторяется целиком.
// Вложенный вызов переиспользует уже открытую транзакцию.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		err = m.run(ctx, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		if isSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == serializationFailure
	}
	return false
}
