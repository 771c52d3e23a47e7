package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
	"github.com/tamdao/mytask/store"
)

// resolver maps human-friendly name hints in an intent payload to concrete
// owned-entity identifiers. Resolution is best effort: a hint that cannot be
// resolved downgrades to a documented fallback instead of aborting, except
// where a required default simply does not exist (no project, no workspace).
type resolver struct {
	store store.Store
}

// shortCircuit deliberately ends the pipeline with a user-facing message
// when a required default cannot be established.
type shortCircuit struct {
	message string
}

// resolve applies per-action defaulting and name-to-id substitution. The
// returned bag is the input bag with resolved keys added; name lookups only
// ever search entities owned by ownerID.
func (r *resolver) resolve(ctx context.Context, action Action, payload domain.Bag, ownerID string) (domain.Bag, *shortCircuit, error) {
	switch action {
	case ActionCreateTask:
		return r.resolveTask(ctx, payload, ownerID)
	case ActionCreateNote:
		return r.resolveNote(ctx, payload, ownerID)
	case ActionAddTransaction:
		return r.resolveTransaction(ctx, payload, ownerID)
	case ActionCreateHabit:
		return resolveHabit(payload), nil, nil
	case ActionCreateProject:
		return r.resolveProject(ctx, payload, ownerID)
	case ActionCreateGoal:
		// Nothing to resolve.
		return payload, nil, nil
	}
	return payload, nil, fmt.Errorf("unknown action %q", action)
}

func (r *resolver) resolveTask(ctx context.Context, payload domain.Bag, ownerID string) (domain.Bag, *shortCircuit, error) {
	if _, ok := payload.GetString("projectId"); !ok {
		projects, err := r.store.ListProjects(ctx, ownerID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list projects: %w", err)
		}
		if len(projects) == 0 {
			return nil, &shortCircuit{message: "You don't have any projects yet. Create a project first."}, nil
		}
		// ListProjects returns newest first.
		payload["projectId"] = domain.StringValue(projects[0].ID)
	}

	if _, ok := payload.GetString("assigneeId"); !ok {
		payload["assigneeId"] = domain.StringValue(ownerID)
	}

	return payload, nil, nil
}

func (r *resolver) resolveNote(ctx context.Context, payload domain.Bag, ownerID string) (domain.Bag, *shortCircuit, error) {
	folderName, ok := payload.GetString("folderName")
	if !ok || folderName == "" {
		return payload, nil, nil
	}

	folders, err := r.store.ListNoteFolders(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list folders: %w", err)
	}
	for _, f := range folders {
		if strings.EqualFold(f.Name, folderName) {
			payload["folderId"] = domain.StringValue(f.ID)
			break
		}
	}
	// No match: proceed without a folder.
	return payload, nil, nil
}

func (r *resolver) resolveTransaction(ctx context.Context, payload domain.Bag, ownerID string) (domain.Bag, *shortCircuit, error) {
	if _, ok := payload.GetString("categoryId"); !ok {
		categories, err := r.store.ListCategories(ctx, ownerID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list categories: %w", err)
		}

		// Exact name match first, then the first owned category whose type
		// matches the transaction's declared type. strings.EqualFold instead
		// of SQL lower(): category names are routinely non-ASCII.
		catName, _ := payload.GetString("categoryName")
		txType, _ := payload.GetString("type")

		var match *domain.FinanceCategory
		if catName != "" {
			for i := range categories {
				if strings.EqualFold(categories[i].Name, catName) {
					match = &categories[i]
					break
				}
			}
		}
		if match == nil {
			for i := range categories {
				if strings.EqualFold(string(categories[i].Type), txType) {
					match = &categories[i]
					break
				}
			}
		}
		if match != nil {
			payload["categoryId"] = domain.StringValue(match.ID)
		}
		// Still no match: proceed without a category and let the finance
		// service reject it as a domain error.
	}

	if _, ok := payload.GetString("transactionDate"); !ok {
		payload["transactionDate"] = domain.StringValue(time.Now().Format("2006-01-02"))
	}

	return payload, nil, nil
}

// resolveHabit applies argument defaults; there is no ownership lookup, but
// the defaulting lives here with the rest of the pre-execution shaping.
func resolveHabit(payload domain.Bag) domain.Bag {
	if _, ok := payload.GetString("color"); !ok {
		payload["color"] = domain.StringValue("#8B5CF6")
	}
	if _, ok := payload.GetString("icon"); !ok {
		payload["icon"] = domain.StringValue("star")
	}
	if _, ok := payload.GetString("frequency"); !ok {
		payload["frequency"] = domain.StringValue(string(domain.HabitDaily))
	}
	return payload
}

func (r *resolver) resolveProject(ctx context.Context, payload domain.Bag, ownerID string) (domain.Bag, *shortCircuit, error) {
	if _, ok := payload.GetString("workspaceId"); !ok {
		workspaces, err := r.store.ListWorkspaces(ctx, ownerID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list workspaces: %w", err)
		}
		if len(workspaces) == 0 {
			return nil, &shortCircuit{message: "You don't have a workspace yet. Create one first."}, nil
		}
		payload["workspaceId"] = domain.StringValue(workspaces[0].ID)
	}

	return payload, nil, nil
}
