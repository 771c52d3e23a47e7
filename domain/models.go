// Package domain defines the core domain models for the mytask service.
package domain

import "time"

// Workspace is the top-level container for a user's projects.
type Workspace struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Project groups tasks inside a workspace.
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Task is a unit of work inside a project.
type Task struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"owner_id"`
	ProjectID      string       `json:"project_id"`
	AssigneeID     string       `json:"assignee_id,omitempty"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	DueDate        string       `json:"due_date,omitempty"` // YYYY-MM-DD
	EstimatedHours int          `json:"estimated_hours,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// NoteFolder groups notes.
type NoteFolder struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Note is a free-form note, optionally filed in a folder.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	FolderID  string    `json:"folder_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// FinanceCategory classifies transactions. The type restricts which
// transactions may reference it.
type FinanceCategory struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	Name          string          `json:"name"`
	Type          TransactionType `json:"type"`
	Icon          string          `json:"icon,omitempty"`
	Color         string          `json:"color,omitempty"`
	MonthlyBudget float64         `json:"monthly_budget,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"owner_id"`
	CategoryID      string          `json:"category_id"`
	Type            TransactionType `json:"type"`
	Amount          float64         `json:"amount"`
	Note            string          `json:"note,omitempty"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD
	CreatedAt       time.Time       `json:"created_at"`
}

// Habit is a recurring activity tracked with streaks.
type Habit struct {
	ID            string         `json:"id"`
	OwnerID       string         `json:"owner_id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Frequency     HabitFrequency `json:"frequency"`
	Icon          string         `json:"icon,omitempty"`
	Color         string         `json:"color,omitempty"`
	TargetPerDay  int            `json:"target_per_day"`
	ReminderTime  string         `json:"reminder_time,omitempty"` // HH:mm
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	Active        bool           `json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Goal is a long-term objective.
type Goal struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TargetDate  string    `json:"target_date,omitempty"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
}

// ChatMessage is one turn of a user's assistant conversation. Turns are
// append-only and owner-scoped; ordering is by creation time.
type ChatMessage struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardOverview is the per-call context snapshot the assistant grounds
// its prompt on. It is computed fresh on every dispatch and never persisted.
type DashboardOverview struct {
	TasksDueToday     int64   `json:"tasks_due_today"`
	TasksPending      int64   `json:"tasks_pending"`
	TasksCompleted    int64   `json:"tasks_completed"`
	MaxStreak         int     `json:"max_streak"`
	TotalIncomeMonth  float64 `json:"total_income_month"`
	TotalExpenseMonth float64 `json:"total_expense_month"`
}
