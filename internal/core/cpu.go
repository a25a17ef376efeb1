package core

import "fmt"

// State is the lifecycle position of a process inside one simulation.
type State int

const (
	NotArrived State = iota
	Ready
	Running
	Done
)

func (s State) String() string {
	switch s {
	case NotArrived:
		return "not-arrived"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Task is the private working copy of a Process. The caller's Process is never mutated.
type Task struct {
	Process    Process
	Remaining  int
	FirstStart int
	State      State
	started    bool
}

// NewTasks builds one working record per process, in input order.
func NewTasks(processes []Process) []*Task {
	tasks := make([]*Task, 0, len(processes))
	for _, p := range processes {
		tasks = append(tasks, &Task{Process: p, Remaining: p.BurstTime, FirstStart: -1})
	}
	return tasks
}

func (t *Task) Started() bool {
	return t.started
}

// Admit moves an arrived task into the ready state.
func (t *Task) Admit() {
	if t.State == NotArrived {
		t.State = Ready
	}
}

// Cpu is a single simulated core writing its history into a Timeline.
type Cpu struct {
	timeline *Timeline
}

func NewCpu() *Cpu {
	return &Cpu{timeline: NewTimeline()}
}

// Now is the current simulated time.
func (c *Cpu) Now() int {
	return c.timeline.End()
}

func (c *Cpu) Timeline() *Timeline {
	return c.timeline
}

// IdleUntil leaves the core idle until the given time.
func (c *Cpu) IdleUntil(until int) error {
	return c.timeline.IdleUntil(until)
}

// Execute runs task for up to units time units and returns the time actually consumed.
// The task goes back to Ready if burst remains, Done otherwise.
func (c *Cpu) Execute(task *Task, units int) (int, error) {
	if task.State != Ready {
		return 0, fmt.Errorf("pid: %s cannot run from state %s", task.Process.ID, task.State)
	}
	if units > task.Remaining {
		units = task.Remaining
	}
	start := c.Now()
	task.State = Running
	if err := c.timeline.Append(task.Process.ID, start, start+units); err != nil {
		return 0, err
	}
	if !task.started {
		task.started = true
		task.FirstStart = start
	}
	task.Remaining -= units
	if task.Remaining == 0 {
		task.State = Done
	} else {
		task.State = Ready
	}
	return units, nil
}
