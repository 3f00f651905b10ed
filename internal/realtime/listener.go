// Package realtime delivers Postgres NOTIFY payloads to in-process subscribers.
package realtime

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrListenerClosed = errors.New("listener closed")

// Handler receives the raw payload of one notification.
type Handler = func(payload string)

// Conn is the part of a dedicated connection the listener needs.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
}

// Connector opens a connection that is not shared with the pool. The returned
// func closes it.
type Connector func(ctx context.Context) (Conn, func(), error)

// PoolConnector takes a connection out of pool for good.
func PoolConnector(pool *pgxpool.Pool) Connector {
	return func(ctx context.Context) (Conn, func(), error) {
		pooled, err := pool.Acquire(ctx)
		if err != nil {
			return nil, nil, err
		}

		conn := pooled.Hijack()

		return conn, func() { conn.Close(context.Background()) }, nil
	}
}

type Listener struct {
	connect  Connector
	channels []string
	logger   *zap.Logger

	mu       sync.RWMutex
	handlers map[string]map[uint64]Handler
	nextID   uint64
	closed   bool
}

func New(connect Connector, logger *zap.Logger, channels ...string) *Listener {
	return &Listener{
		connect:  connect,
		channels: channels,
		logger:   logger,
		handlers: make(map[string]map[uint64]Handler),
	}
}

// Subscribe registers fn for channel. Once the returned func has returned, fn
// is not called again. fn must not unsubscribe itself.
func (l *Listener) Subscribe(channel string, fn Handler) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrListenerClosed
	}

	id := l.nextID
	l.nextID++

	if l.handlers[channel] == nil {
		l.handlers[channel] = make(map[uint64]Handler)
	}
	l.handlers[channel][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()

			delete(l.handlers[channel], id)
		})
	}, nil
}

// Run listens on every channel until ctx ends or the connection fails.
func (l *Listener) Run(ctx context.Context) error {
	conn, closeConn, err := l.connect(ctx)
	if err != nil {
		return err
	}
	defer closeConn()

	for _, channel := range l.channels {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
			return err
		}
		l.logger.Info("listening for notifications", zap.String("channel", channel))
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		l.dispatch(n.Channel, n.Payload)
	}
}

func (l *Listener) dispatch(channel, payload string) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	l.logger.Debug("notification received", zap.String("channel", channel), zap.Int("handlers", len(l.handlers[channel])))

	for _, fn := range l.handlers[channel] {
		fn(payload)
	}
}

// Close drops every subscription.
func (l *Listener) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	l.handlers = make(map[string]map[uint64]Handler)
}
