package core

import "strconv"

// Process is the immutable input record of one simulated process.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    Priority
}

// Priority is an optional scheduling priority. Lower values win.
// The zero value carries no priority.
type Priority struct {
	value int
	set   bool
}

// NoPriority is the absent priority.
var NoPriority = Priority{}

// SomePriority wraps a defined priority value.
func SomePriority(value int) Priority {
	return Priority{value: value, set: true}
}

// Get returns the priority value and whether it is defined.
func (p Priority) Get() (int, bool) {
	return p.value, p.set
}

func (p Priority) IsSet() bool {
	return p.set
}

func (p Priority) String() string {
	if !p.set {
		return "-"
	}
	return strconv.Itoa(p.value)
}
