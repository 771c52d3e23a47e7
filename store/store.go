// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/tamdao/mytask/domain"
)

// Store defines the interface for data persistence. Every read and write is
// scoped by an explicit owner id; no operation crosses owners.
type Store interface {
	// Chat history (append-only)
	AppendChatMessage(ctx context.Context, msg *domain.ChatMessage) error
	RecentChatMessages(ctx context.Context, ownerID string, limit int) ([]domain.ChatMessage, error)

	// Workspaces
	CreateWorkspace(ctx context.Context, ws *domain.Workspace) error
	ListWorkspaces(ctx context.Context, ownerID string) ([]domain.Workspace, error)
	GetWorkspace(ctx context.Context, ownerID, workspaceID string) (*domain.Workspace, error)

	// Projects
	CreateProject(ctx context.Context, p *domain.Project) error
	ListProjects(ctx context.Context, ownerID string) ([]domain.Project, error)
	GetProject(ctx context.Context, ownerID, projectID string) (*domain.Project, error)

	// Tasks
	CreateTask(ctx context.Context, t *domain.Task) error
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	CountTasksDueOn(ctx context.Context, ownerID, date string) (int64, error)
	CountTasksByStatus(ctx context.Context, ownerID string, status domain.TaskStatus) (int64, error)
	CountPendingTasks(ctx context.Context, ownerID string) (int64, error)

	// Notes
	CreateNoteFolder(ctx context.Context, f *domain.NoteFolder) error
	ListNoteFolders(ctx context.Context, ownerID string) ([]domain.NoteFolder, error)
	CreateNote(ctx context.Context, n *domain.Note) error
	ListNotes(ctx context.Context, ownerID string) ([]domain.Note, error)

	// Finance
	CreateCategory(ctx context.Context, c *domain.FinanceCategory) error
	ListCategories(ctx context.Context, ownerID string) ([]domain.FinanceCategory, error)
	GetCategory(ctx context.Context, ownerID, categoryID string) (*domain.FinanceCategory, error)
	CreateTransaction(ctx context.Context, t *domain.Transaction) error
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	SumTransactions(ctx context.Context, ownerID string, txType domain.TransactionType, from, to string) (float64, error)

	// Habits
	CreateHabit(ctx context.Context, h *domain.Habit) error
	ListHabits(ctx context.Context, ownerID string) ([]domain.Habit, error)
	MaxHabitStreak(ctx context.Context, ownerID string) (int, error)

	// Goals
	CreateGoal(ctx context.Context, g *domain.Goal) error
	ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error)

	// Lifecycle
	Close() error
}
