package collector

import "context"

// Result carries one collected item or the error that spoiled it. Error
// results let the pipeline count and skip bad records without stopping the
// stream.
type Result[T any] struct {
	Result T
	Err    error
}

type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}
