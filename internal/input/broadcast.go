package input

// Listener receives input edge events from a Broadcaster.
type Listener interface {
	OnKeyDown(k Key, mods Mod)
	OnKeyUp(k Key)
	OnMouseDown(b MouseButton, x, y int)
	OnMouseUp(b MouseButton, x, y int)
}

// NopListener implements Listener with empty methods. Embed it to handle only
// the callbacks you care about.
type NopListener struct{}

func (NopListener) OnKeyDown(Key, Mod) {}
func (NopListener) OnKeyUp(Key) {}
func (NopListener) OnMouseDown(MouseButton, int, int) {}
func (NopListener) OnMouseUp(MouseButton, int, int) {}

// Subscription ties a Listener to a Broadcaster until Unsubscribe is called.
type Subscription struct {
	b        *Broadcaster
	listener Listener
	active   bool
}

// Unsubscribe removes the listener. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.b.remove(s)
}

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool { return s != nil && s.active }

// Broadcaster drains a Source once per frame, keeps the held-key table current
// and fans edge events out to subscribed listeners in subscription order.
type Broadcaster struct {
	src  Source
	keys KeyState
	subs []*Subscription
	buf  []Event
}

// NewBroadcaster returns a Broadcaster reading from src.
func NewBroadcaster(src Source) *Broadcaster {
	return &Broadcaster{src: src}
}

// Keys exposes the live held-key table.
func (b *Broadcaster) Keys() *KeyState { return &b.keys }

// Subscribe registers l. The broadcaster does not own l; the caller must
// Unsubscribe before discarding it.
func (b *Broadcaster) Subscribe(l Listener) *Subscription {
	sub := &Subscription{b: b, listener: l, active: true}
	subs := make([]*Subscription, len(b.subs), len(b.subs)+1)
	copy(subs, b.subs)
	b.subs = append(subs, sub)
	return sub
}

// Len returns the number of active subscriptions.
func (b *Broadcaster) Len() int { return len(b.subs) }

func (b *Broadcaster) remove(sub *Subscription) {
	subs := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s != sub {
			subs = append(subs, s)
		}
	}
	b.subs = subs
}

// Poll drains all pending events and reports whether termination was
// requested, either by a quit event or by Alt+F4.
func (b *Broadcaster) Poll() (quit bool) {
	b.buf = b.src.Poll(b.buf[:0])
	for _, ev := range b.buf {
		if b.Dispatch(ev) {
			quit = true
		}
	}
	return quit
}

// Dispatch applies a single event. It reports whether the event requests
// termination.
func (b *Broadcaster) Dispatch(ev Event) (quit bool) {
	// Subscribe replaces b.subs, so a listener added during delivery first
	// hears the next event. Unsubscribe clears active and applies at once.
	subs := b.subs
	switch ev.Kind {
	case EventQuit:
		return true
	case EventKeyDown:
		b.keys.Set(ev.Key, true)
		if ev.Key == KeyF4 && ev.Mods.Has(ModAlt) {
			quit = true
		}
		for _, s := range subs {
			if s.active {
				s.listener.OnKeyDown(ev.Key, ev.Mods)
			}
		}
	case EventKeyUp:
		b.keys.Set(ev.Key, false)
		for _, s := range subs {
			if s.active {
				s.listener.OnKeyUp(ev.Key)
			}
		}
	case EventMouseDown:
		for _, s := range subs {
			if s.active {
				s.listener.OnMouseDown(ev.Button, ev.Pos.X, ev.Pos.Y)
			}
		}
	case EventMouseUp:
		for _, s := range subs {
			if s.active {
				s.listener.OnMouseUp(ev.Button, ev.Pos.X, ev.Pos.Y)
			}
		}
	}
	return quit
}
