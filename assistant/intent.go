package assistant

import (
	"encoding/json"
	"strings"

	"github.com/tamdao/mytask/domain"
)

// Action is one of the enumerated commands the model may request.
type Action string

const (
	ActionCreateTask     Action = "CREATE_TASK"
	ActionCreateNote     Action = "CREATE_NOTE"
	ActionAddTransaction Action = "ADD_TRANSACTION"
	ActionCreateHabit    Action = "CREATE_HABIT"
	ActionCreateProject  Action = "CREATE_PROJECT"
	ActionCreateGoal     Action = "CREATE_GOAL"
)

var knownActions = map[string]Action{
	string(ActionCreateTask):     ActionCreateTask,
	string(ActionCreateNote):     ActionCreateNote,
	string(ActionAddTransaction): ActionAddTransaction,
	string(ActionCreateHabit):    ActionCreateHabit,
	string(ActionCreateProject):  ActionCreateProject,
	string(ActionCreateGoal):     ActionCreateGoal,
}

// Intent is a recognized structured command extracted from model output.
type Intent struct {
	Action  Action
	Payload domain.Bag
}

type parseKind int

const (
	parsePlain parseKind = iota
	parseStructured
	parseUnsupported
)

// parsed is the sum result of inspecting a completion.
type parsed struct {
	kind   parseKind
	intent *Intent
	action string // raw action name, set for parseUnsupported
}

// parseCompletion decides whether a completion is conversational text or a
// structured intent. A completion is structured only if, after trimming
// leading whitespace, it starts with '{' and decodes to a JSON object with
// an "action" key. Every decode failure downgrades to plain text; nothing
// here returns an error.
func parseCompletion(text string) parsed {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return parsed{kind: parsePlain}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return parsed{kind: parsePlain}
	}
	rawAction, ok := obj["action"]
	if !ok {
		return parsed{kind: parsePlain}
	}

	var name string
	if err := json.Unmarshal(rawAction, &name); err != nil {
		return parsed{kind: parsePlain}
	}

	action, ok := knownActions[strings.ToUpper(name)]
	if !ok {
		return parsed{kind: parseUnsupported, action: name}
	}

	// A malformed payload is not fatal: the executor's validation decides
	// whether the action can run with what is there.
	payload, err := domain.DecodeBag(obj["payload"])
	if err != nil {
		payload = domain.Bag{}
	}

	return parsed{kind: parseStructured, intent: &Intent{Action: action, Payload: payload}}
}
