package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

type SequenceRepository interface {
	GetSequence(ctx context.Context, code string) (Sequence, error)
	UpdateSequence(ctx context.Context, sequence Sequence) error
	Atomic(ctx context.Context, cb func(r SequenceRepository) error) error
}
