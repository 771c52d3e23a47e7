package assistant

import (
	"context"
	"fmt"

	"github.com/tamdao/mytask/domain"
	"github.com/tamdao/mytask/service"
)

// executor maps a resolved payload onto the matching domain create call and
// formats the confirmation text. Collaborator errors propagate unchanged;
// containment is the orchestrator's job.
type executor struct {
	svc *service.Service
}

func (e *executor) execute(ctx context.Context, action Action, payload domain.Bag, ownerID string) (string, error) {
	switch action {
	case ActionCreateTask:
		return e.createTask(ctx, payload, ownerID)
	case ActionCreateNote:
		return e.createNote(ctx, payload, ownerID)
	case ActionAddTransaction:
		return e.addTransaction(ctx, payload, ownerID)
	case ActionCreateHabit:
		return e.createHabit(ctx, payload, ownerID)
	case ActionCreateProject:
		return e.createProject(ctx, payload, ownerID)
	case ActionCreateGoal:
		return e.createGoal(ctx, payload, ownerID)
	}
	return "", fmt.Errorf("unknown action %q", action)
}

func (e *executor) createTask(ctx context.Context, payload domain.Bag, ownerID string) (string, error) {
	req := domain.TaskRequest{
		Title:       stringAt(payload, "title"),
		Description: stringAt(payload, "description"),
		ProjectID:   stringAt(payload, "projectId"),
		AssigneeID:  stringAt(payload, "assigneeId"),
		Priority:    domain.TaskPriority(stringAt(payload, "priority")),
		DueDate:     stringAt(payload, "dueDate"),
	}

	result, err := e.svc.CreateTask(ctx, ownerID, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created task **%s** in project _%s_.", result.Title, result.ProjectName), nil
}

func (e *executor) createNote(ctx context.Context, payload domain.Bag, ownerID string) (string, error) {
	req := domain.NoteRequest{
		Title:    stringAt(payload, "title"),
		Content:  stringAt(payload, "content"),
		FolderID: stringAt(payload, "folderId"),
	}

	note, err := e.svc.CreateNote(ctx, ownerID, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created note **%s**.", note.Title), nil
}

func (e *executor) addTransaction(ctx context.Context, payload domain.Bag, ownerID string) (string, error) {
	amount, _ := payload.GetNumber("amount")
	req := domain.TransactionRequest{
		Amount:          amount,
		Type:            stringAt(payload, "type"),
		CategoryID:      stringAt(payload, "categoryId"),
		Note:            stringAt(payload, "note"),
		TransactionDate: stringAt(payload, "transactionDate"),
	}

	txn, err := e.svc.CreateTransaction(ctx, ownerID, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Recorded %s transaction of %.0f on %s.", txn.Type, txn.Amount, txn.TransactionDate), nil
}

func (e *executor) createHabit(ctx context.Context, payload domain.Bag, ownerID string) (string, error) {
	target, _ := payload.GetNumber("targetPerDay")
	req := domain.HabitRequest{
		Name:         stringAt(payload, "name"),
		Description:  stringAt(payload, "description"),
		Icon:         stringAt(payload, "icon"),
		Color:        stringAt(payload, "color"),
		Frequency:    stringAt(payload, "frequency"),
		TargetPerDay: int(target),
	}

	habit, err := e.svc.CreateHabit(ctx, ownerID, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created habit **%s**.", habit.Name), nil
}

func (e *executor) createProject(ctx context.Context, payload domain.Bag, ownerID string) (string, error) {
	req := domain.ProjectRequest{
		Name:        stringAt(payload, "name"),
		Description: stringAt(payload, "description"),
		WorkspaceID: stringAt(payload, "workspaceId"),
	}

	project, err := e.svc.CreateProject(ctx, ownerID, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created project **%s**.", project.Name), nil
}

func (e *executor) createGoal(ctx context.Context, payload domain.Bag, ownerID string) (string, error) {
	req := domain.GoalRequest{
		Title:       stringAt(payload, "title"),
		Description: stringAt(payload, "description"),
		TargetDate:  stringAt(payload, "targetDate"),
	}

	goal, err := e.svc.CreateGoal(ctx, ownerID, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created goal **%s**.", goal.Title), nil
}

// stringAt reads a string key, tolerating absence and wrong kinds.
func stringAt(payload domain.Bag, key string) string {
	s, _ := payload.GetString(key)
	return s
}
