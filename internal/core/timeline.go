package core

import (
	"errors"
	"fmt"
)

// IdleID marks timeline intervals in which no process runs.
const IdleID = "IDLE"

var ErrBlockOrder = errors.New("timeline block out of order")

type TimelineBlock struct {
	ID        string
	StartTime int
	EndTime   int
}

func (b TimelineBlock) Duration() int {
	return b.EndTime - b.StartTime
}

func (b TimelineBlock) IsIdle() bool {
	return b.ID == IdleID
}

// Timeline accumulates contiguous execution and idle intervals starting at time 0.
type Timeline struct {
	blocks []TimelineBlock
	end    int
}

func NewTimeline() *Timeline {
	return &Timeline{blocks: make([]TimelineBlock, 0)}
}

// End returns the end time of the last appended block.
func (t *Timeline) End() int {
	return t.end
}

// Append adds a block that must start exactly where the previous one ended.
func (t *Timeline) Append(id string, start, end int) error {
	if start != t.end {
		return fmt.Errorf("%w: block %s starts at %d, timeline ends at %d", ErrBlockOrder, id, start, t.end)
	}
	if end <= start {
		return fmt.Errorf("%w: block %s has empty interval [%d, %d)", ErrBlockOrder, id, start, end)
	}
	t.blocks = append(t.blocks, TimelineBlock{ID: id, StartTime: start, EndTime: end})
	t.end = end
	return nil
}

// IdleUntil emits an idle block up to the given time when the CPU has nothing to run.
// It is a no-op if the timeline already reaches that point.
func (t *Timeline) IdleUntil(until int) error {
	if until <= t.end {
		return nil
	}
	return t.Append(IdleID, t.end, until)
}

// Blocks returns a copy of the recorded blocks.
func (t *Timeline) Blocks() []TimelineBlock {
	blocks := make([]TimelineBlock, len(t.blocks))
	copy(blocks, t.blocks)
	return blocks
}

// Coalesced returns the blocks with adjacent same-id intervals merged.
func (t *Timeline) Coalesced() []TimelineBlock {
	return Coalesce(t.blocks)
}

// Coalesce folds consecutive blocks sharing an id and contiguous bounds into one.
func Coalesce(blocks []TimelineBlock) []TimelineBlock {
	merged := make([]TimelineBlock, 0, len(blocks))
	for _, block := range blocks {
		if n := len(merged); n > 0 && merged[n-1].ID == block.ID && merged[n-1].EndTime == block.StartTime {
			merged[n-1].EndTime = block.EndTime
			continue
		}
		merged = append(merged, block)
	}
	return merged
}
