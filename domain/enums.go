package domain

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusReview     TaskStatus = "REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskPriority represents the priority of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// TransactionType represents the direction of a finance transaction.
// Finance categories carry the same type; a transaction's category must match.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// HabitFrequency represents how often a habit is expected to be checked in.
type HabitFrequency string

const (
	HabitDaily  HabitFrequency = "DAILY"
	HabitWeekly HabitFrequency = "WEEKLY"
	HabitCustom HabitFrequency = "CUSTOM"
)

// Chat roles. Anything that is not RoleAssistant is prompted as a user turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ValidTransactionType reports whether s is a known transaction type.
func ValidTransactionType(s string) bool {
	switch TransactionType(s) {
	case TransactionIncome, TransactionExpense:
		return true
	}
	return false
}
