package core

import (
	"errors"
)

var (
	ErrUnsupportedSceneFormat = errors.New("unsupported scene format")
	ErrUnknownShape           = errors.New("unknown shape")
	ErrInvalidShape           = errors.New("invalid shape")
	ErrDuplicateShapeID       = errors.New("duplicate shape id")
	ErrNoWorkers              = errors.New("worker count must be positive")
	ErrNegativeChannelSize    = errors.New("channel size must not be negative")
	ErrQueueFull              = errors.New("queue is full")
	ErrQueueEmpty             = errors.New("queue is empty")
	ErrWatcherClosed          = errors.New("watcher closed")
	ErrEvaluatorClosed        = errors.New("evaluator shut down")
	ErrInvalidQuery           = errors.New("invalid query")
)
