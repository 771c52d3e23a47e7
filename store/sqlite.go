package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tamdao/mytask/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS chat_messages (
			message_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_owner ON chat_messages(owner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS workspaces (
			workspace_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_workspaces_owner ON workspaces(owner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS projects (
			project_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			workspace_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			status TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (workspace_id) REFERENCES workspaces(workspace_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_owner ON projects(owner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			task_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			assignee_id TEXT,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			due_date TEXT,
			estimated_hours INTEGER,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(project_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS note_folders (
			folder_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			note_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			folder_id TEXT,
			title TEXT NOT NULL,
			content TEXT,
			pinned INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes(owner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS finance_categories (
			category_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			icon TEXT,
			color TEXT,
			monthly_budget REAL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_owner ON finance_categories(owner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			category_id TEXT NOT NULL,
			type TEXT NOT NULL,
			amount REAL NOT NULL,
			note TEXT,
			transaction_date TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES finance_categories(category_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_owner ON transactions(owner_id, transaction_date)`,
		`CREATE TABLE IF NOT EXISTS habits (
			habit_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			frequency TEXT NOT NULL,
			icon TEXT,
			color TEXT,
			target_per_day INTEGER NOT NULL DEFAULT 1,
			reminder_time TEXT,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_habits_owner ON habits(owner_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS goals (
			goal_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			target_date TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_owner ON goals(owner_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendChatMessage appends one conversation turn.
func (s *SQLiteStore) AppendChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (message_id, owner_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.OwnerID, msg.Role, msg.Content, msg.CreatedAt)
	return err
}

// RecentChatMessages returns the owner's most recent turns, newest first.
// The rowid tiebreak keeps turns written in the same instant in call order.
func (s *SQLiteStore) RecentChatMessages(ctx context.Context, ownerID string, limit int) ([]domain.ChatMessage, error) {
	query := `SELECT message_id, owner_id, role, content, created_at FROM chat_messages
		WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.OwnerID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// CreateWorkspace creates a workspace.
func (s *SQLiteStore) CreateWorkspace(ctx context.Context, ws *domain.Workspace) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workspaces (workspace_id, owner_id, name, description, created_at) VALUES (?, ?, ?, ?, ?)`,
		ws.ID, ws.OwnerID, ws.Name, nullable(ws.Description), ws.CreatedAt)
	return err
}

// ListWorkspaces lists the owner's workspaces in creation order.
func (s *SQLiteStore) ListWorkspaces(ctx context.Context, ownerID string) ([]domain.Workspace, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT workspace_id, owner_id, name, description, created_at FROM workspaces
		 WHERE owner_id = ? ORDER BY created_at ASC, rowid ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workspaces []domain.Workspace
	for rows.Next() {
		var ws domain.Workspace
		var desc sql.NullString
		if err := rows.Scan(&ws.ID, &ws.OwnerID, &ws.Name, &desc, &ws.CreatedAt); err != nil {
			return nil, err
		}
		ws.Description = desc.String
		workspaces = append(workspaces, ws)
	}
	return workspaces, rows.Err()
}

// GetWorkspace retrieves an owner's workspace by ID.
func (s *SQLiteStore) GetWorkspace(ctx context.Context, ownerID, workspaceID string) (*domain.Workspace, error) {
	var ws domain.Workspace
	var desc sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT workspace_id, owner_id, name, description, created_at FROM workspaces
		 WHERE workspace_id = ? AND owner_id = ?`, workspaceID, ownerID).
		Scan(&ws.ID, &ws.OwnerID, &ws.Name, &desc, &ws.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ws.Description = desc.String
	return &ws, nil
}

// CreateProject creates a project.
func (s *SQLiteStore) CreateProject(ctx context.Context, p *domain.Project) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (project_id, owner_id, workspace_id, name, description, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OwnerID, p.WorkspaceID, p.Name, nullable(p.Description), nullable(p.Status), p.CreatedAt)
	return err
}

// ListProjects lists the owner's projects, newest first.
func (s *SQLiteStore) ListProjects(ctx context.Context, ownerID string) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_id, owner_id, workspace_id, name, description, status, created_at FROM projects
		 WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var desc, status sql.NullString
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.WorkspaceID, &p.Name, &desc, &status, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Description = desc.String
		p.Status = status.String
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject retrieves an owner's project by ID.
func (s *SQLiteStore) GetProject(ctx context.Context, ownerID, projectID string) (*domain.Project, error) {
	var p domain.Project
	var desc, status sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT project_id, owner_id, workspace_id, name, description, status, created_at FROM projects
		 WHERE project_id = ? AND owner_id = ?`, projectID, ownerID).
		Scan(&p.ID, &p.OwnerID, &p.WorkspaceID, &p.Name, &desc, &status, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Description = desc.String
	p.Status = status.String
	return &p, nil
}

// CreateTask creates a task.
func (s *SQLiteStore) CreateTask(ctx context.Context, t *domain.Task) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (task_id, owner_id, project_id, assignee_id, title, description, status, priority, due_date, estimated_hours, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.ProjectID, nullable(t.AssigneeID), t.Title, nullable(t.Description),
		t.Status, t.Priority, nullable(t.DueDate), t.EstimatedHours, t.CreatedAt)
	return err
}

// ListTasks lists the owner's tasks, newest first.
func (s *SQLiteStore) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT task_id, owner_id, project_id, assignee_id, title, description, status, priority, due_date, estimated_hours, created_at
		 FROM tasks WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var assignee, desc, due sql.NullString
		var hours sql.NullInt64
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.ProjectID, &assignee, &t.Title, &desc,
			&t.Status, &t.Priority, &due, &hours, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.AssigneeID = assignee.String
		t.Description = desc.String
		t.DueDate = due.String
		t.EstimatedHours = int(hours.Int64)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CountTasksDueOn counts the owner's tasks due on the given date.
func (s *SQLiteStore) CountTasksDueOn(ctx context.Context, ownerID, date string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE owner_id = ? AND due_date = ?`, ownerID, date).Scan(&n)
	return n, err
}

// CountTasksByStatus counts the owner's tasks in the given status.
func (s *SQLiteStore) CountTasksByStatus(ctx context.Context, ownerID string, status domain.TaskStatus) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE owner_id = ? AND status = ?`, ownerID, status).Scan(&n)
	return n, err
}

// CountPendingTasks counts the owner's tasks not yet done.
func (s *SQLiteStore) CountPendingTasks(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE owner_id = ? AND status != ?`, ownerID, domain.TaskStatusDone).Scan(&n)
	return n, err
}

// CreateNoteFolder creates a note folder.
func (s *SQLiteStore) CreateNoteFolder(ctx context.Context, f *domain.NoteFolder) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO note_folders (folder_id, owner_id, name, created_at) VALUES (?, ?, ?, ?)`,
		f.ID, f.OwnerID, f.Name, f.CreatedAt)
	return err
}

// ListNoteFolders lists the owner's folders in creation order.
func (s *SQLiteStore) ListNoteFolders(ctx context.Context, ownerID string) ([]domain.NoteFolder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT folder_id, owner_id, name, created_at FROM note_folders
		 WHERE owner_id = ? ORDER BY created_at ASC, rowid ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []domain.NoteFolder
	for rows.Next() {
		var f domain.NoteFolder
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// CreateNote creates a note.
func (s *SQLiteStore) CreateNote(ctx context.Context, n *domain.Note) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (note_id, owner_id, folder_id, title, content, pinned, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.OwnerID, nullable(n.FolderID), n.Title, nullable(n.Content), n.Pinned, n.CreatedAt)
	return err
}

// ListNotes lists the owner's notes, newest first.
func (s *SQLiteStore) ListNotes(ctx context.Context, ownerID string) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT note_id, owner_id, folder_id, title, content, pinned, created_at FROM notes
		 WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		var folder, content sql.NullString
		if err := rows.Scan(&n.ID, &n.OwnerID, &folder, &n.Title, &content, &n.Pinned, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.FolderID = folder.String
		n.Content = content.String
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// CreateCategory creates a finance category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, c *domain.FinanceCategory) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO finance_categories (category_id, owner_id, name, type, icon, color, monthly_budget, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Type, nullable(c.Icon), nullable(c.Color), c.MonthlyBudget, c.CreatedAt)
	return err
}

// ListCategories lists the owner's categories in creation order. The order
// is what makes the resolver's type-matching fallback deterministic.
func (s *SQLiteStore) ListCategories(ctx context.Context, ownerID string) ([]domain.FinanceCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category_id, owner_id, name, type, icon, color, monthly_budget, created_at FROM finance_categories
		 WHERE owner_id = ? ORDER BY created_at ASC, rowid ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.FinanceCategory
	for rows.Next() {
		var c domain.FinanceCategory
		var icon, color sql.NullString
		var budget sql.NullFloat64
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Type, &icon, &color, &budget, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Icon = icon.String
		c.Color = color.String
		c.MonthlyBudget = budget.Float64
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory retrieves an owner's category by ID.
func (s *SQLiteStore) GetCategory(ctx context.Context, ownerID, categoryID string) (*domain.FinanceCategory, error) {
	var c domain.FinanceCategory
	var icon, color sql.NullString
	var budget sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT category_id, owner_id, name, type, icon, color, monthly_budget, created_at FROM finance_categories
		 WHERE category_id = ? AND owner_id = ?`, categoryID, ownerID).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.Type, &icon, &color, &budget, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Icon = icon.String
	c.Color = color.String
	c.MonthlyBudget = budget.Float64
	return &c, nil
}

// CreateTransaction creates a transaction.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (transaction_id, owner_id, category_id, type, amount, note, transaction_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.CategoryID, t.Type, t.Amount, nullable(t.Note), t.TransactionDate, t.CreatedAt)
	return err
}

// ListTransactions lists the owner's transactions, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT transaction_id, owner_id, category_id, type, amount, note, transaction_date, created_at FROM transactions
		 WHERE owner_id = ? ORDER BY transaction_date DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var note sql.NullString
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.CategoryID, &t.Type, &t.Amount, &note, &t.TransactionDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Note = note.String
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// SumTransactions sums the owner's transactions of the given type in the
// inclusive date range. Dates compare lexicographically in YYYY-MM-DD form.
func (s *SQLiteStore) SumTransactions(ctx context.Context, ownerID string, txType domain.TransactionType, from, to string) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT SUM(amount) FROM transactions
		 WHERE owner_id = ? AND type = ? AND transaction_date >= ? AND transaction_date <= ?`,
		ownerID, txType, from, to).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

// CreateHabit creates a habit.
func (s *SQLiteStore) CreateHabit(ctx context.Context, h *domain.Habit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO habits (habit_id, owner_id, name, description, frequency, icon, color, target_per_day, reminder_time, current_streak, longest_streak, active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.OwnerID, h.Name, nullable(h.Description), h.Frequency, nullable(h.Icon), nullable(h.Color),
		h.TargetPerDay, nullable(h.ReminderTime), h.CurrentStreak, h.LongestStreak, h.Active, h.CreatedAt)
	return err
}

// ListHabits lists the owner's active habits in creation order.
func (s *SQLiteStore) ListHabits(ctx context.Context, ownerID string) ([]domain.Habit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT habit_id, owner_id, name, description, frequency, icon, color, target_per_day, reminder_time, current_streak, longest_streak, active, created_at
		 FROM habits WHERE owner_id = ? AND active = 1 ORDER BY created_at ASC, rowid ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []domain.Habit
	for rows.Next() {
		var h domain.Habit
		var desc, icon, color, reminder sql.NullString
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, &desc, &h.Frequency, &icon, &color,
			&h.TargetPerDay, &reminder, &h.CurrentStreak, &h.LongestStreak, &h.Active, &h.CreatedAt); err != nil {
			return nil, err
		}
		h.Description = desc.String
		h.Icon = icon.String
		h.Color = color.String
		h.ReminderTime = reminder.String
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// MaxHabitStreak returns the owner's best current streak across active habits.
func (s *SQLiteStore) MaxHabitStreak(ctx context.Context, ownerID string) (int, error) {
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(current_streak) FROM habits WHERE owner_id = ? AND active = 1`, ownerID).Scan(&max)
	if err != nil {
		return 0, err
	}
	return int(max.Int64), nil
}

// CreateGoal creates a goal.
func (s *SQLiteStore) CreateGoal(ctx context.Context, g *domain.Goal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (goal_id, owner_id, title, description, target_date, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.OwnerID, g.Title, nullable(g.Description), nullable(g.TargetDate), g.CreatedAt)
	return err
}

// ListGoals lists the owner's goals, newest first.
func (s *SQLiteStore) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT goal_id, owner_id, title, description, target_date, created_at FROM goals
		 WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		var desc, target sql.NullString
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Title, &desc, &target, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Description = desc.String
		g.TargetDate = target.String
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// nullable maps empty strings to NULL so optional columns stay NULL.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
