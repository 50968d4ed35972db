package fp

// Source is a pending computation owned by the host environment, such as a
// future or a callback-driven client.
type Source[S, F any] interface {
	// OnComplete registers the completion handlers. Implementations must
	// eventually invoke exactly one of them, at most once.
	OnComplete(onSuccess func(S), onFailure func(F))
}
