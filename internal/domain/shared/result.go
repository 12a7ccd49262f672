package shared

// NoData is the payload of results that carry only a success flag and message.
type NoData = struct{}

// Result is the outcome of a domain operation. Expected failures (unknown
// ids, duplicates, empty aggregates) are reported through a failed Result
// instead of an error return, so callers can always render Message.
//
// A Result is immutable once constructed.
type Result[T any] struct {
	success bool
	message string
	data    T
	err     error
}

// Ok builds a successful result.
func Ok[T any](message string, data T) Result[T] {
	return Result[T]{success: true, message: message, data: data}
}

// Fail builds a failed result. kind is kept for errors.Is checks and may be nil.
func Fail[T any](kind error, message string, data T) Result[T] {
	return Result[T]{message: message, data: data, err: kind}
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.success }

// Message returns the human-readable outcome.
func (r Result[T]) Message() string { return r.message }

// Data returns the payload. Failed results still carry their zero/default payload.
func (r Result[T]) Data() T { return r.data }

// Err returns the error kind of a failed result, or nil on success.
func (r Result[T]) Err() error { return r.err }
