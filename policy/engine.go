// Package policy gates model-proposed actions with an OPA policy before the
// assistant executes them.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions a policy may return.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Input is the evaluation input for one structured intent.
type Input struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload"`
	OwnerID string         `json:"owner_id"`
}

// Engine is the OPA action-guard engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine prepares the given rego policy source for evaluation.
func NewEngine(ctx context.Context, policySource string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.assistant_policy.decision"),
		rego.Module("assistant_policy.rego", policySource),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks the intent against the policy and returns the decision
// and an optional reason. A policy that produces no result allows by
// default; anything other than "block" is treated as allow.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionAllow, "default", nil
	}

	switch val := results[0].Expressions[0].Value.(type) {
	case string:
		return val, "", nil
	case map[string]any:
		decision, _ := val["decision"].(string)
		reason, _ := val["reason"].(string)
		if decision == "" {
			decision = DecisionAllow
		}
		return decision, reason, nil
	}

	return DecisionAllow, "unexpected return type", nil
}

// DefaultPolicy allows every action.
const DefaultPolicy = `
package assistant_policy

import rego.v1

default decision := "allow"
`

// PolicyWithCeiling renders the default policy with a concrete transaction
// ceiling baked in, for configurations that set one.
func PolicyWithCeiling(maxAmount float64) string {
	if maxAmount <= 0 {
		return DefaultPolicy
	}
	return fmt.Sprintf(`
package assistant_policy

import rego.v1

default decision := "allow"

decision := "block" if {
	input.action == "ADD_TRANSACTION"
	input.payload.amount > %g
}
`, maxAmount)
}
