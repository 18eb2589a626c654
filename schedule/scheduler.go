package schedule

import (
	"sort"
	"time"
)

// CancelFunc stops a pending task. It returns true if the task had not fired
// and is now cancelled.
type CancelFunc func() bool

type task struct {
	id       uint64
	deadline time.Time
	fn       func()
	done     bool
}

// Scheduler holds pending one-shot tasks. It is not safe for concurrent use;
// call it from the update loop only.
type Scheduler struct {
	clock  Clock
	tasks  []*task
	nextID uint64
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{clock: clock}
}

// After registers fn to run once, on the first Update at or after now+d.
func (s *Scheduler) After(d time.Duration, fn func()) CancelFunc {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &task{
		id:       s.nextID,
		deadline: s.clock.Now().Add(d),
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)

	return func() bool {
		if t.done {
			return false
		}
		t.done = true
		s.remove(t.id)
		return true
	}
}

// Update runs every due task in deadline order. Tasks registered by a
// running task wait for the next Update.
func (s *Scheduler) Update() {
	if len(s.tasks) == 0 {
		return
	}
	now := s.clock.Now()

	var due []*task
	pending := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.deadline.After(now) {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	for i := len(pending); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = pending

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].id < due[j].id
		}
		return due[i].deadline.Before(due[j].deadline)
	})

	for _, t := range due {
		if t.done {
			continue
		}
		t.done = true
		if t.fn != nil {
			t.fn()
		}
	}
}

// Pending returns the number of tasks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.done = true
	}
	s.tasks = nil
}

func (s *Scheduler) remove(id uint64) {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
