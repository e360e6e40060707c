package scene

// Event is a simple multicast callback list, used for things like
// selection-changed notifications. Not safe for concurrent use; the
// editor invokes events from the frame loop only.
type Event[T any] struct {
	listeners []func(T)
}

func (e *Event[T]) AddListener(listener func(T)) {
	e.listeners = append(e.listeners, listener)
}

func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l(arg)
	}
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *Event[T]) GetListenerCount() int {
	return len(e.listeners)
}
