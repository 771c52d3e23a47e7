// Package assistant turns free-form user messages into conversational
// replies or concrete domain mutations, by round-tripping through a chat
// completion endpoint and interpreting whatever comes back as untrusted
// model output.
package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tamdao/mytask/domain"
	"github.com/tamdao/mytask/llm"
	"github.com/tamdao/mytask/policy"
	"github.com/tamdao/mytask/service"
	"github.com/tamdao/mytask/store"
)

// Fixed user-facing messages. Internal errors are logged for operators and
// never shown verbatim.
const (
	msgNotConfigured = "The AI assistant is not configured. Set the Groq API key to enable it."
	msgConnectivity  = "I couldn't reach the AI service. Please try again in a moment."
	msgBlocked       = "That action was blocked by policy."
)

// Options tunes the assistant.
type Options struct {
	// Configured reports whether the completion endpoint is usable. When
	// false, Respond refuses immediately without side effects.
	Configured bool
	// HistoryWindow is the number of recent turns included in the prompt.
	HistoryWindow int
}

// Assistant is the conversation orchestrator.
type Assistant struct {
	store    store.Store
	svc      *service.Service
	client   llm.CompletionClient
	guard    *policy.Engine
	logger   zerolog.Logger
	resolver resolver
	executor executor
	opts     Options
}

// New creates an assistant.
func New(st store.Store, svc *service.Service, client llm.CompletionClient, guard *policy.Engine, logger zerolog.Logger, opts Options) *Assistant {
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = 20
	}
	return &Assistant{
		store:    st,
		svc:      svc,
		client:   client,
		guard:    guard,
		logger:   logger.With().Str("component", "assistant").Logger(),
		resolver: resolver{store: st},
		executor: executor{svc: svc},
		opts:     opts,
	}
}

// Respond handles one dispatch call. It always returns a non-empty reply
// and never returns an error: every internal failure collapses to one of
// the fixed messages or to the raw completion text. Except for the
// unconfigured case, exactly one user turn and one assistant turn are
// recorded, in that order.
func (a *Assistant) Respond(ctx context.Context, ownerID, message string) string {
	if !a.opts.Configured {
		return msgNotConfigured
	}

	log := a.logger.With().Str("owner_id", ownerID).Logger()

	// Record the inbound turn first so the history read below includes it.
	if err := a.appendTurn(ctx, ownerID, domain.RoleUser, message); err != nil {
		log.Error().Err(err).Msg("failed to record user turn")
	}

	reply := a.dispatch(ctx, ownerID, message, log)

	if err := a.appendTurn(ctx, ownerID, domain.RoleAssistant, reply); err != nil {
		log.Error().Err(err).Msg("failed to record assistant turn")
	}

	return reply
}

// dispatch runs snapshot, prompt assembly, the completion call, and intent
// handling. It returns the final reply text.
func (a *Assistant) dispatch(ctx context.Context, ownerID, message string, log zerolog.Logger) string {
	overview, err := a.svc.DashboardOverview(ctx, ownerID)
	if err != nil {
		// Prompt grounding is best effort; an empty snapshot still works.
		log.Error().Err(err).Msg("failed to compute context snapshot")
		overview = &domain.DashboardOverview{}
	}

	messages, err := a.buildMessages(ctx, ownerID, overview)
	if err != nil {
		log.Error().Err(err).Msg("failed to read history")
		messages = []llm.Message{
			{Role: domain.RoleSystem, Content: buildSystemPrompt(overview)},
			{Role: domain.RoleUser, Content: message},
		}
	}

	completion, err := a.client.Complete(ctx, messages)
	if err != nil {
		log.Warn().Err(err).Msg("completion call failed")
		return msgConnectivity
	}

	return a.interpret(ctx, ownerID, completion, log)
}

// buildMessages assembles the prompt: one system message, then the bounded
// history in chronological order with roles normalized to user/assistant.
func (a *Assistant) buildMessages(ctx context.Context, ownerID string, overview *domain.DashboardOverview) ([]llm.Message, error) {
	history, err := a.store.RecentChatMessages(ctx, ownerID, a.opts.HistoryWindow)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: domain.RoleSystem, Content: buildSystemPrompt(overview)})

	// RecentChatMessages is newest first; the prompt wants oldest first.
	for i := len(history) - 1; i >= 0; i-- {
		role := domain.RoleUser
		if history[i].Role == domain.RoleAssistant {
			role = domain.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: history[i].Content})
	}
	return messages, nil
}

// interpret turns the raw completion into the final reply: plain text is
// returned verbatim, structured intents are guarded, resolved, and
// executed. Pipeline failures after this point fall back to the raw
// completion text; only domain validation failures surface as an explicit
// "action failed" reply.
func (a *Assistant) interpret(ctx context.Context, ownerID, completion string, log zerolog.Logger) string {
	p := parseCompletion(completion)
	switch p.kind {
	case parsePlain:
		return completion
	case parseUnsupported:
		return fmt.Sprintf("The action %q is not supported.", p.action)
	}

	intent := p.intent
	log = log.With().Str("action", string(intent.Action)).Logger()

	decision, reason, err := a.guard.Evaluate(ctx, policy.Input{
		Action:  string(intent.Action),
		Payload: intent.Payload.ToMap(),
		OwnerID: ownerID,
	})
	if err != nil {
		log.Error().Err(err).Msg("policy evaluation failed")
		return completion
	}
	if decision == policy.DecisionBlock {
		log.Info().Str("reason", reason).Msg("action blocked by policy")
		return msgBlocked
	}

	resolved, sc, err := a.resolver.resolve(ctx, intent.Action, intent.Payload, ownerID)
	if err != nil {
		log.Error().Err(err).Msg("reference resolution failed")
		return completion
	}
	if sc != nil {
		return sc.message
	}

	outcome, err := a.executor.execute(ctx, intent.Action, resolved, ownerID)
	if err != nil {
		if service.IsValidation(err) {
			log.Info().Err(err).Msg("action rejected")
			return "Action failed: " + err.Error()
		}
		log.Error().Err(err).Msg("action execution failed")
		return completion
	}
	return outcome
}

// History returns the owner's most recent turns, newest first.
func (a *Assistant) History(ctx context.Context, ownerID string, limit int) ([]domain.ChatMessage, error) {
	return a.store.RecentChatMessages(ctx, ownerID, limit)
}

func (a *Assistant) appendTurn(ctx context.Context, ownerID, role, content string) error {
	return a.store.AppendChatMessage(ctx, &domain.ChatMessage{
		ID:        "msg_" + uuid.New().String()[:8],
		OwnerID:   ownerID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}
