package assistant

import (
	"fmt"
	"strings"

	"github.com/tamdao/mytask/domain"
)

// actionGrammar enumerates the commands the model may return, one JSON
// example per action. The payload keys here are the wire grammar the parser
// and resolver consume.
const actionGrammar = `You are the MyTask assistant. You can perform the following actions by returning a JSON object:
1. Create a task: { "action": "CREATE_TASK", "payload": { "title": "...", "description": "...", "priority": "HIGH/MEDIUM/LOW" } }
2. Create a note: { "action": "CREATE_NOTE", "payload": { "title": "...", "content": "...", "folderName": "..." (optional) } }
3. Add a transaction: { "action": "ADD_TRANSACTION", "payload": { "type": "INCOME/EXPENSE", "amount": 100000, "categoryName": "...", "note": "..." } }
4. Create a habit: { "action": "CREATE_HABIT", "payload": { "name": "...", "targetPerDay": 1 } }
5. Create a project: { "action": "CREATE_PROJECT", "payload": { "name": "...", "description": "..." } }
6. Create a goal: { "action": "CREATE_GOAL", "payload": { "title": "...", "description": "...", "targetDate": "YYYY-MM-DD" } }

- If the user is issuing a command, return ONLY the JSON object. No preamble.
- For "categoryName" on transactions, guess the best-fitting category name from the user's wording.`

const promptRules = `Rules:
- For ordinary questions: answer briefly and in a friendly tone, in the user's language.
- For action commands: return only the JSON.`

// buildSystemPrompt assembles the single system message: the action grammar
// followed by the context snapshot inlined as plain sentences.
func buildSystemPrompt(overview *domain.DashboardOverview) string {
	var sb strings.Builder
	sb.WriteString(actionGrammar)
	sb.WriteString("\n\nCurrent context:\n")
	fmt.Fprintf(&sb, "- Tasks due today: %d\n", overview.TasksDueToday)
	fmt.Fprintf(&sb, "- Tasks completed: %d\n", overview.TasksCompleted)
	fmt.Fprintf(&sb, "- Tasks pending: %d\n", overview.TasksPending)
	fmt.Fprintf(&sb, "- Best habit streak: %d\n", overview.MaxStreak)
	fmt.Fprintf(&sb, "- Spent this month: %.0f\n", overview.TotalExpenseMonth)
	sb.WriteString("\n")
	sb.WriteString(promptRules)
	return sb.String()
}
