package zoomable

// InteractionID correlates the asynchronous completions of the channels
// animated back to rest at the end of one interaction. IDs increase
// monotonically within a Zoomable; zero is never assigned.
type InteractionID uint64

// ChannelResult is the outcome reported by one channel of a settle animation.
type ChannelResult struct {
	Finished bool
	Value    float64
}

// resetBucket collects channel completions for one InteractionID.
type resetBucket struct {
	results [channelCount]ChannelResult
	seen    [channelCount]bool
	count   int
}

// animationEnd aggregates the per-channel completions of settle animations
// and reports once per InteractionID, when every channel has settled.
// Buckets are keyed, so completions from an older interaction land in their
// own bucket and never affect a newer one.
type animationEnd struct {
	buckets map[InteractionID]*resetBucket
	onEnd   func(id InteractionID, finished bool, results map[Channel]ChannelResult)
}

func newAnimationEnd(onEnd func(InteractionID, bool, map[Channel]ChannelResult)) *animationEnd {
	return &animationEnd{
		buckets: make(map[InteractionID]*resetBucket),
		onEnd:   onEnd,
	}
}

// track opens a bucket for id. An existing bucket for the same id is replaced.
func (a *animationEnd) track(id InteractionID) {
	a.buckets[id] = &resetBucket{}
}

// pending reports whether a bucket is open for id.
func (a *animationEnd) pending(id InteractionID) bool {
	_, ok := a.buckets[id]
	return ok
}

// sink returns the completion callback for channel c under id. The sink is
// bound to the bucket open right now: once that bucket completes or is
// replaced, the sink becomes a no-op even if id is tracked again.
func (a *animationEnd) sink(id InteractionID, c Channel) completion {
	b := a.buckets[id]
	return func(finished bool, value float64) {
		if b == nil || a.buckets[id] != b {
			return
		}
		a.settled(id, c, finished, value)
	}
}

// settled records one channel completion for the open bucket of id.
// Arrivals for an id without an open bucket are ignored. A channel reporting
// twice keeps its latest result but is counted once.
func (a *animationEnd) settled(id InteractionID, c Channel, finished bool, value float64) {
	b, ok := a.buckets[id]
	if !ok {
		return
	}
	b.results[c] = ChannelResult{Finished: finished, Value: value}
	if !b.seen[c] {
		b.seen[c] = true
		b.count++
	}
	if b.count < channelCount {
		return
	}

	delete(a.buckets, id)
	all := true
	detail := make(map[Channel]ChannelResult, channelCount)
	for _, ch := range Channels {
		detail[ch] = b.results[ch]
		if !b.results[ch].Finished {
			all = false
		}
	}
	if a.onEnd != nil {
		a.onEnd(id, all, detail)
	}
}
