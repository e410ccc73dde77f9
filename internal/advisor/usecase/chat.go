package usecase

import (
	"context"
	"strings"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent/orchestrator"
)

// Chat resolves a free-form question. Generation failures come back inside
// the Answer; only a missing backend or cancellation is returned as error.
func (uc *implUseCase) Chat(ctx context.Context, input advisor.ChatInput) (advisor.Answer, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return advisor.Answer{}, advisor.ErrEmptyQuery
	}
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = advisor.DefaultSessionID
	}

	return uc.answer(ctx, orchestrator.Input{
		Query:       query,
		SessionID:   sessionID,
		UserContext: input.UserContext,
	})
}

// History returns every recorded exchange of a session, oldest first.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (advisor.HistoryOutput, error) {
	return advisor.HistoryOutput{
		SessionID: sessionID,
		History:   uc.resolver.History(sessionID),
	}, nil
}

// ClearHistory forgets a session. Unknown sessions are not an error.
func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	uc.resolver.Clear(sessionID)
	uc.l.Infof(ctx, "uc.ClearHistory: session %s cleared", sessionID)
	return nil
}

// answer runs one turn and folds orchestrator errors into the Answer.
func (uc *implUseCase) answer(ctx context.Context, in orchestrator.Input) (advisor.Answer, error) {
	out, err := uc.resolver.Resolve(ctx, in)
	ans := advisor.Answer{
		Response:  out.ResponseText,
		Dataset:   out.Dataset,
		SessionID: out.SessionID,
		Timestamp: out.Timestamp,
		Error:     out.Error,
	}
	switch {
	case err == nil:
		return ans, nil
	case orchestrator.IsUnavailable(err):
		return ans, advisor.ErrGenerationUnavailable
	case orchestrator.IsGenerationError(err):
		uc.l.Warnf(ctx, "uc.answer: %v", err)
		return ans, nil
	default:
		return ans, err
	}
}
