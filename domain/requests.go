package domain

// Create-request shapes accepted by the service layer. The assistant's
// executor builds these from resolved model output; the HTTP API binds them
// directly from request bodies. Validation happens in the service layer.

// WorkspaceRequest creates a workspace.
type WorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProjectRequest creates a project.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	WorkspaceID string `json:"workspace_id"`
	Status      string `json:"status,omitempty"`
}

// TaskRequest creates a task.
type TaskRequest struct {
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	ProjectID      string       `json:"project_id"`
	AssigneeID     string       `json:"assignee_id,omitempty"`
	Status         TaskStatus   `json:"status,omitempty"`
	Priority       TaskPriority `json:"priority,omitempty"`
	DueDate        string       `json:"due_date,omitempty"`
	EstimatedHours int          `json:"estimated_hours,omitempty"`
}

// NoteFolderRequest creates a note folder.
type NoteFolderRequest struct {
	Name string `json:"name"`
}

// NoteRequest creates a note.
type NoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	FolderID string `json:"folder_id,omitempty"`
	Pinned   bool   `json:"pinned,omitempty"`
}

// CategoryRequest creates a finance category.
type CategoryRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"` // INCOME or EXPENSE
	Icon          string `json:"icon,omitempty"`
	Color         string `json:"color,omitempty"`
	MonthlyBudget float64 `json:"monthly_budget,omitempty"`
}

// TransactionRequest creates a transaction.
type TransactionRequest struct {
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"` // INCOME or EXPENSE
	CategoryID      string  `json:"category_id"`
	Note            string  `json:"note,omitempty"`
	TransactionDate string  `json:"transaction_date,omitempty"` // YYYY-MM-DD
}

// HabitRequest creates a habit.
type HabitRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	Color        string `json:"color,omitempty"`
	Frequency    string `json:"frequency,omitempty"` // DAILY, WEEKLY, CUSTOM
	TargetPerDay int    `json:"target_per_day,omitempty"`
	ReminderTime string `json:"reminder_time,omitempty"` // HH:mm
}

// GoalRequest creates a goal.
type GoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"target_date,omitempty"` // YYYY-MM-DD
}
