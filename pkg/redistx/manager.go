package redistx

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrTxConflict возвращается, когда оптимистичная транзакция не прошла
	// после всех повторов из-за конкурентного изменения отслеживаемых ключей
	ErrTxConflict = errors.New("redistx: transaction aborted after retries")

	// ErrNoTransaction возвращается при попытке применить пайплайн записей
	// вне активной транзакции
	ErrNoTransaction = errors.New("redistx: no active transaction in context")
)

type ctxKey int

const (
	txKey ctxKey = iota
	pipeKey
)

// Manager менеджер оптимистичных транзакций поверх Redis WATCH/MULTI/EXEC
//
// Проверка-и-запись по нескольким ключам должна быть неделимой относительно
// конкурентных запросов. WATCH отслеживает ключи на время чтений, MULTI/EXEC
// применяет записи; если за это время кто-то изменил отслеживаемый ключ,
// EXEC отклоняется и транзакция повторяется заново
type Manager struct {
	client     *redis.Client
	maxRetries int
}

// NewManager создает новый менеджер транзакций
func NewManager(client *redis.Client, maxRetries int) *Manager {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Manager{
		client:     client,
		maxRetries: maxRetries,
	}
}

// DoOptimistic выполняет fn внутри WATCH-транзакции над ключами watchKeys
//
// Чтения внутри fn должны идти через Executor(txCtx, ...), записи - через
// Pipelined(txCtx, ...). Бизнес-ошибки fn прерывают транзакцию без записей
// и возвращаются вызывающему как есть. При конфликте записи транзакция
// повторяется целиком, до maxRetries раз
func (m *Manager) DoOptimistic(ctx context.Context, watchKeys []string, fn func(txCtx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < m.maxRetries; attempt++ {
		err := m.client.Watch(ctx, func(tx *redis.Tx) error {
			return fn(context.WithValue(ctx, txKey, tx))
		}, watchKeys...)

		if err == nil {
			return nil
		}

		// Конфликт по отслеживаемым ключам - пробуем еще раз
		if errors.Is(err, redis.TxFailedErr) {
			lastErr = err
			continue
		}

		return err
	}

	return fmt.Errorf("%w: %v", ErrTxConflict, lastErr)
}

// Executor возвращает исполнителя команд для текущего контекста:
// пайплайн внутри Pipelined, транзакционное соединение внутри DoOptimistic,
// иначе базовый клиент. Репозитории всегда получают исполнителя через эту
// функцию и не знают, выполняются они в транзакции или нет
func Executor(ctx context.Context, base redis.Cmdable) redis.Cmdable {
	if pipe, ok := ctx.Value(pipeKey).(redis.Pipeliner); ok {
		return pipe
	}
	if tx, ok := ctx.Value(txKey).(*redis.Tx); ok {
		return tx
	}
	return base
}

// Pipelined буферизует команды fn в MULTI/EXEC-пайплайн транзакции и
// применяет их одним блоком. Допустим только внутри DoOptimistic:
// незащищённые составные записи - ошибка программиста
func Pipelined(ctx context.Context, fn func(pipeCtx context.Context) error) error {
	tx, ok := ctx.Value(txKey).(*redis.Tx)
	if !ok {
		return ErrNoTransaction
	}

	_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return fn(context.WithValue(ctx, pipeKey, pipe))
	})
	return err
}
