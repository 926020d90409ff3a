package streams

// Closed is an interface which defines a method to check if a stream is closed or not.
// TryClose and LogClose skip streams which report themselves as already closed.
type Closed interface {
	Closed() bool
}

// Counter is implemented by stream wrappers which count the bytes passing through them.
type Counter interface {
	Count() int64
}
