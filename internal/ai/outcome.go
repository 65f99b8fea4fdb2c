// Package ai talks to the external text-completion endpoint and falls back to local generators.
package ai

// Source says where an Outcome value came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Outcome is either a value produced by the remote model or a locally generated fallback
// together with the error that caused the fallback.
type Outcome[T any] struct {
	Value  T
	Source Source
	Err    error
}

// Fallback reports whether the value was produced locally.
func (o Outcome[T]) Fallback() bool { return o.Source == SourceFallback }

// Resolve builds an Outcome from a remote result, calling fallback only when err is non-nil.
func Resolve[T any](v T, err error, fallback func() T) Outcome[T] {
	if err != nil {
		return Outcome[T]{Value: fallback(), Source: SourceFallback, Err: err}
	}
	return Outcome[T]{Value: v, Source: SourceModel}
}
