package subpub

// retainedEntry is the latest retained payload for one exact topic string.
type retainedEntry[T any] struct {
	topic   string
	payload T
}

// retainedStore keeps at most one retained payload per exact topic. A topic
// slice preserves first-insertion order so that replay at subscribe time is
// deterministic. Like the registry, it has no lock of its own and must be
// accessed with the broker's mutex held.
type retainedStore[T any] struct {
	byTopic map[string]int
	order   []retainedEntry[T]
}

func newRetainedStore[T any]() *retainedStore[T] {
	return &retainedStore[T]{byTopic: make(map[string]int)}
}

// put stores payload as the retained message for topic, overwriting any
// previous payload in place so the topic keeps its original position.
func (s *retainedStore[T]) put(topic string, payload T) {
	if i, ok := s.byTopic[topic]; ok {
		s.order[i].payload = payload
		return
	}
	s.byTopic[topic] = len(s.order)
	s.order = append(s.order, retainedEntry[T]{topic: topic, payload: payload})
}

// get returns the retained payload for topic, if any.
func (s *retainedStore[T]) get(topic string) (T, bool) {
	if i, ok := s.byTopic[topic]; ok {
		return s.order[i].payload, true
	}
	var zero T
	return zero, false
}

// remove drops the retained payload for topic and reports whether one
// existed.
func (s *retainedStore[T]) remove(topic string) bool {
	i, ok := s.byTopic[topic]
	if !ok {
		return false
	}
	delete(s.byTopic, topic)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.byTopic[s.order[j].topic] = j
	}
	return true
}

// all returns every retained entry in first-insertion order. The returned
// slice aliases internal storage and must only be read under the broker's
// lock.
func (s *retainedStore[T]) all() []retainedEntry[T] {
	return s.order
}

// topics returns the retained topic strings in first-insertion order.
func (s *retainedStore[T]) topics() []string {
	out := make([]string, len(s.order))
	for i, e := range s.order {
		out[i] = e.topic
	}
	return out
}
