package ganttify

// Project is a point-in-time snapshot of a Ganttify project, captured when a
// guild runs /addproject. The task id list is not refreshed afterwards; only
// the task records themselves are re-fetched on every reminder tick.
type Project struct {
	ID      string   `json:"_id"`
	Name    string   `json:"nameProject"`
	TaskIDs []string `json:"tasks"`
}

// Task mirrors a task document as the API returns it. DueDateTime is kept as
// the raw wire string so one unparseable date cannot fail the whole batch;
// the classifier parses it per task.
type Task struct {
	ID          string `json:"_id"`
	Title       string `json:"taskTitle"`
	Description string `json:"taskDescription"`
	DueDateTime string `json:"dueDateTime"`
	Progress    string `json:"progress"`
}

// ProgressCompleted is the progress value that excludes a task from reminders.
const ProgressCompleted = "Completed"
