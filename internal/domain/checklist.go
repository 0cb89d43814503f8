package domain

// TaskType distinguishes the two kinds of checklist work.
type TaskType string

const (
	TaskUpload TaskType = "upload"
	TaskDraft  TaskType = "draft"
)

// ChecklistTask is one unit of required work attached to a session.
type ChecklistTask struct {
	ID             string   `json:"id"`
	Type           TaskType `json:"type"`
	SectionVariant string   `json:"section_variant,omitempty"`
}

// Checklist holds the session's tasks partitioned by type, preserving
// server order within each partition.
type Checklist struct {
	Uploads []ChecklistTask
	Drafts  []ChecklistTask
}

// PartitionTasks splits a fetched task list into uploads and drafts.
// Tasks of any other type are dropped.
func PartitionTasks(tasks []ChecklistTask) Checklist {
	var c Checklist
	for _, t := range tasks {
		switch t.Type {
		case TaskUpload:
			c.Uploads = append(c.Uploads, t)
		case TaskDraft:
			c.Drafts = append(c.Drafts, t)
		}
	}
	return c
}
