package classify

import (
	"testing"
	"time"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
)

// reference date with a deliberate mid-day time so the tests prove the
// midnight-UTC truncation.
var ref = time.Date(2024, time.November, 4, 15, 42, 7, 0, time.UTC)

func dueIn(days int, hour int) string {
	return time.Date(2024, time.November, 4+days, hour, 30, 0, 0, time.UTC).Format(time.RFC3339)
}

func allBuckets() map[Bucket]bool {
	active := make(map[Bucket]bool, len(All))
	for _, b := range All {
		active[b] = true
	}
	return active
}

func TestClassifyPlacesTaskInExactlyOneBucket(t *testing.T) {
	task := ganttify.Task{ID: "t1", Title: "write report", DueDateTime: dueIn(7, 9)}

	buckets, skipped := Classify(ref, []ganttify.Task{task}, allBuckets())
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped tasks: %v", skipped)
	}
	if got := len(buckets[SevenDays]); got != 1 {
		t.Fatalf("want task in 7-day bucket, got %d entries", got)
	}
	for _, b := range []Bucket{FiveDays, ThreeDays, OneDay} {
		if len(buckets[b]) != 0 {
			t.Errorf("task leaked into %d-day bucket", int(b))
		}
	}
}

func TestClassifyComparesCalendarDateOnly(t *testing.T) {
	// due late in the evening three days out; the reference time is
	// mid-afternoon, so an hour-based comparison would misplace it
	task := ganttify.Task{ID: "t1", DueDateTime: dueIn(3, 23)}

	buckets, _ := Classify(ref, []ganttify.Task{task}, allBuckets())
	if len(buckets[ThreeDays]) != 1 {
		t.Fatalf("want task in 3-day bucket, got %v", buckets)
	}
}

func TestClassifyExcludesCompletedTasks(t *testing.T) {
	task := ganttify.Task{ID: "t1", DueDateTime: dueIn(7, 9), Progress: ganttify.ProgressCompleted}

	buckets, skipped := Classify(ref, []ganttify.Task{task}, allBuckets())
	if len(skipped) != 0 {
		t.Fatalf("completed task should be silently excluded, got skipped %v", skipped)
	}
	for b, tasks := range buckets {
		if len(tasks) != 0 {
			t.Errorf("completed task placed in %d-day bucket", int(b))
		}
	}
}

func TestClassifyWithNoActiveBuckets(t *testing.T) {
	tasks := []ganttify.Task{
		{ID: "t1", DueDateTime: dueIn(7, 9)},
		{ID: "t2", DueDateTime: dueIn(1, 9)},
	}

	buckets, _ := Classify(ref, tasks, map[Bucket]bool{})
	if len(buckets) != 0 {
		t.Fatalf("want empty mapping, got %v", buckets)
	}
}

func TestClassifyOnlyComputesActiveBuckets(t *testing.T) {
	tasks := []ganttify.Task{
		{ID: "t1", DueDateTime: dueIn(7, 9)},
		{ID: "t2", DueDateTime: dueIn(3, 9)},
	}

	buckets, _ := Classify(ref, tasks, map[Bucket]bool{SevenDays: true})
	if len(buckets[SevenDays]) != 1 {
		t.Fatalf("want t1 in 7-day bucket, got %v", buckets)
	}
	if _, ok := buckets[ThreeDays]; ok {
		t.Error("inactive 3-day bucket should not appear in the result")
	}
}

func TestClassifySkipsMalformedDueDates(t *testing.T) {
	tasks := []ganttify.Task{
		{ID: "bad", DueDateTime: "next tuesday"},
		{ID: "none"},
		{ID: "good", DueDateTime: dueIn(1, 0)},
	}

	buckets, skipped := Classify(ref, tasks, allBuckets())
	if len(skipped) != 2 {
		t.Fatalf("want 2 skipped tasks, got %v", skipped)
	}
	if len(buckets[OneDay]) != 1 || buckets[OneDay][0].ID != "good" {
		t.Fatalf("good task missing from 1-day bucket: %v", buckets)
	}
}

func TestClassifyAcceptsMillisecondTimestamps(t *testing.T) {
	// Mongo serializes dates with millisecond precision
	task := ganttify.Task{ID: "t1", DueDateTime: "2024-11-09T08:00:00.000Z"}

	buckets, skipped := Classify(ref, []ganttify.Task{task}, allBuckets())
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if len(buckets[FiveDays]) != 1 {
		t.Fatalf("want task in 5-day bucket, got %v", buckets)
	}
}

func TestBucketLabelsRoundTrip(t *testing.T) {
	want := []string{"7 Days Before", "5 Days Before", "3 Days Before", "1 Day Before"}
	for i, b := range All {
		if b.Label() != want[i] {
			t.Errorf("bucket %d label = %q, want %q", int(b), b.Label(), want[i])
		}
		got, ok := FromLabel(b.Label())
		if !ok || got != b {
			t.Errorf("FromLabel(%q) = %v, %v", b.Label(), got, ok)
		}
	}
	if _, ok := FromLabel("2 Days Before"); ok {
		t.Error("FromLabel accepted an unknown label")
	}
}
