// Package clock provides the game's simulated time and a queue of delayed
// actions. Time only moves when Advance is called, so callers decide how
// fast the world runs and tests can step it deterministically.
package clock

import (
	"container/heap"
	"fmt"
	"math"
)

// epsilon absorbs the rounding of summed tick lengths, so a timer due on a
// tick boundary fires on that tick and not the next.
const epsilon = 1e-9

// Action is a callback fired by the scheduler.
type Action func()

type timer struct {
	at       float64
	seq      uint64
	interval float64 // 0 for one-shot timers
	action   Action
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler is an ordered queue of (fire time, action) pairs.
// Actions due at the same instant fire in the order they were scheduled.
// Timers cannot be cancelled.
type Scheduler struct {
	now   float64
	seq   uint64
	queue timerQueue
}

// New returns a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulated time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// After fires action once, delay seconds from now. A negative delay is
// treated as zero, so the action fires on the next Advance.
func (s *Scheduler) After(delay float64, action Action) {
	if delay < 0 {
		delay = 0
	}
	s.push(s.now+delay, 0, action)
}

// Every fires action every interval seconds, starting one interval from now.
func (s *Scheduler) Every(interval float64, action Action) error {
	if interval <= 0 {
		return fmt.Errorf("clock: repeat interval must be positive, got %v", interval)
	}
	s.push(s.now+interval, interval, action)
	return nil
}

// Advance moves time forward by dt seconds and fires every action that
// falls due, in order. Actions scheduled by a firing action that are due
// inside the same window fire during this call.
func (s *Scheduler) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	end := s.now + dt
	for len(s.queue) > 0 && s.queue[0].at <= end+epsilon {
		t := heap.Pop(&s.queue).(*timer)
		s.now = math.Min(t.at, end)
		if t.interval > 0 {
			s.push(t.at+t.interval, t.interval, t.action)
		}
		t.action()
	}
	s.now = end
}

func (s *Scheduler) push(at, interval float64, action Action) {
	s.seq++
	heap.Push(&s.queue, &timer{at: at, seq: s.seq, interval: interval, action: action})
}
