package life

import "sync"

// Barrier is a reusable rendezvous for a fixed number of goroutines. Each
// phase ends when the last participant arrives; the optional action then runs
// on that goroutine before anyone is released.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	phase   uint64
	action  func()
}

// NewBarrier constructs a barrier for n participants. It panics when n < 1.
func NewBarrier(n int, action func()) *Barrier {
	if n < 1 {
		panic("life: barrier needs at least one participant")
	}
	b := &Barrier{parties: n, action: action}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all participants of the current phase have arrived.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	phase := b.phase
	b.waiting++
	if b.waiting == b.parties {
		if b.action != nil {
			b.action()
		}
		b.waiting = 0
		b.phase++
		b.cond.Broadcast()
		return
	}
	for phase == b.phase {
		b.cond.Wait()
	}
}
