package systems

import (
	"container/heap"
	"time"
)

type scheduledEvent struct {
	at   time.Duration
	seq  uint64
	gen  uint64
	name string
	fire func(*State)
}

type eventQueue []*scheduledEvent

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*scheduledEvent)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// Scheduler is a delay queue driven by the simulation clock. Callbacks run
// inside the tick, so they must re-check the state they expect before
// mutating it.
type Scheduler struct {
	queue eventQueue
	seq   uint64
	gen   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules fire to run on the first tick whose clock reaches at.
func (s *Scheduler) At(at time.Duration, name string, fire func(*State)) {
	s.seq++
	heap.Push(&s.queue, &scheduledEvent{at: at, seq: s.seq, gen: s.gen, name: name, fire: fire})
}

// RunDue fires every event due at or before now, in time order.
func (s *Scheduler) RunDue(st *State, now time.Duration) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].at <= now {
		ev := heap.Pop(&s.queue).(*scheduledEvent)
		if ev.gen != s.gen {
			continue
		}
		ev.fire(st)
		fired++
	}
	return fired
}

// Cancel drops every pending event. Events scheduled before the call
// become no-ops even if something still holds them.
func (s *Scheduler) Cancel() {
	s.gen++
	s.queue = s.queue[:0]
}

// Len is the number of pending events.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Pending lists the names of pending events in firing order.
func (s *Scheduler) Pending() []string {
	cp := make(eventQueue, len(s.queue))
	copy(cp, s.queue)
	names := make([]string, 0, len(cp))
	for cp.Len() > 0 {
		names = append(names, heap.Pop(&cp).(*scheduledEvent).name)
	}
	return names
}
