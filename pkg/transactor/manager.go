package transactor

import "context"

// Manager runs fn inside one transaction carried by ctx. A call made while a
// transaction is already in ctx joins it instead of opening a new one.
//
//go:generate mockgen -source=manager.go -destination=mocks/mock.go -package=mocktransactor
type Manager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
