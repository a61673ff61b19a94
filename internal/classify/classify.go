// Package classify buckets tasks by how many whole days remain until their
// due date. Comparison is calendar-date only, at midnight UTC, so the
// time-of-day on a due timestamp never matters.
package classify

import (
	"fmt"
	"time"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
)

// Bucket is a reminder lead time in days before a task is due.
type Bucket int

// The four lead times a guild can opt into, in the order they are shown.
const (
	SevenDays Bucket = 7
	FiveDays  Bucket = 5
	ThreeDays Bucket = 3
	OneDay    Bucket = 1
)

// All lists every bucket in display order.
var All = []Bucket{SevenDays, FiveDays, ThreeDays, OneDay}

// Label returns the button label used for this bucket, e.g. "7 Days Before".
func (b Bucket) Label() string {
	if b == OneDay {
		return "1 Day Before"
	}
	return fmt.Sprintf("%d Days Before", int(b))
}

// FromLabel maps a button label back to its bucket.
func FromLabel(label string) (Bucket, bool) {
	for _, b := range All {
		if b.Label() == label {
			return b, true
		}
	}
	return 0, false
}

// Heading returns the section heading for this bucket in a reminder message.
func (b Bucket) Heading() string {
	if b == OneDay {
		return "Tasks Due in 1 Day:"
	}
	return fmt.Sprintf("Tasks Due in %d Days:", int(b))
}

// DueSuffix returns the human-readable "Due in N days" line for this bucket.
func (b Bucket) DueSuffix() string {
	if b == OneDay {
		return "Due in 1 day"
	}
	return fmt.Sprintf("Due in %d days", int(b))
}

// Skipped records a task that could not be classified, so the caller can log
// it without the classifier doing any I/O itself.
type Skipped struct {
	TaskID string
	Reason string
}

// due date wire formats the API emits; Mongo serializes with milliseconds.
var dueDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Classify places each non-completed task into the active bucket whose
// target date matches the task's due date, comparing calendar dates at
// midnight UTC. Inactive buckets are not computed at all. Tasks with a
// missing or unparseable due date are excluded from every bucket and
// returned in the skipped list.
func Classify(ref time.Time, tasks []ganttify.Task, active map[Bucket]bool) (map[Bucket][]ganttify.Task, []Skipped) {
	buckets := make(map[Bucket][]ganttify.Task, len(active))

	targets := make(map[Bucket]time.Time, len(active))
	day := truncateUTC(ref)
	for _, b := range All {
		if active[b] {
			targets[b] = day.AddDate(0, 0, int(b))
		}
	}
	if len(targets) == 0 {
		return buckets, nil
	}

	var skipped []Skipped
	for _, task := range tasks {
		if task.Progress == ganttify.ProgressCompleted {
			continue
		}
		due, err := parseDueDate(task.DueDateTime)
		if err != nil {
			skipped = append(skipped, Skipped{TaskID: task.ID, Reason: err.Error()})
			continue
		}
		dueDay := truncateUTC(due)
		for b, target := range targets {
			if dueDay.Equal(target) {
				buckets[b] = append(buckets[b], task)
			}
		}
	}
	return buckets, skipped
}

func parseDueDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("no due date")
	}
	for _, layout := range dueDateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable due date %q", raw)
}

func truncateUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
