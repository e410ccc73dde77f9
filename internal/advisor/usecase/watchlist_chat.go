package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
	"financial-agent/internal/agent/orchestrator"
	"financial-agent/internal/marketdata"
)

// WatchlistChat answers a question framed by the user's watchlist. An
// optional ticker focuses every data request on that symbol, whether or not
// it is on the list.
func (uc *implUseCase) WatchlistChat(ctx context.Context, input advisor.WatchlistChatInput) (advisor.Answer, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return advisor.Answer{}, advisor.ErrEmptyQuery
	}
	ticker := ""
	if strings.TrimSpace(input.Ticker) != "" {
		t, ok := marketdata.NormalizeTicker(input.Ticker)
		if !ok {
			return advisor.Answer{}, advisor.ErrInvalidTicker
		}
		ticker = t
	}
	userID := userOrDefault(input.UserID)

	symbols, err := uc.watchlistSymbols(ctx, userID)
	if err != nil {
		return advisor.Answer{}, err
	}

	framed := fmt.Sprintf(advisor.WatchlistAvailableFmt, query, strings.Join(symbols, ", "))
	sessionKey := advisor.WatchlistGeneral
	userContext := agent.UserContext{
		agent.ContextWatchlist: symbols,
		agent.ContextPlatform:  advisor.WatchlistPlatform,
	}
	if ticker != "" {
		sessionKey = ticker
		userContext[agent.ContextFocusedTicker] = ticker
		framed = fmt.Sprintf(advisor.WatchlistFocusFmt, ticker, query)
		if !slices.Contains(symbols, ticker) {
			framed += fmt.Sprintf(advisor.WatchlistOutsideFmt, ticker)
		}
	}

	return uc.answer(ctx, orchestrator.Input{
		Query:       framed,
		SessionID:   fmt.Sprintf(advisor.WatchlistSessionFmt, sessionKey, userID),
		UserContext: userContext,
	})
}

// WatchlistSessions lists the user's watchlist conversations, newest first.
func (uc *implUseCase) WatchlistSessions(ctx context.Context, userID int64) (advisor.WatchlistSessionsOutput, error) {
	userID = userOrDefault(userID)
	symbols, err := uc.watchlistSymbols(ctx, userID)
	if err != nil {
		return advisor.WatchlistSessionsOutput{}, err
	}

	infos := uc.sessions.List(func(id string) bool {
		_, owner, ok := parseWatchlistSession(id)
		return ok && owner == userID
	})

	sessions := make([]advisor.ChatSession, 0, len(infos))
	for _, info := range infos {
		ticker, _, _ := parseWatchlistSession(info.ID)
		title := advisor.WatchlistTitleGeneral
		if ticker != "" && slices.Contains(symbols, ticker) {
			title = fmt.Sprintf(advisor.WatchlistTitleFmt, ticker)
		}
		sessions = append(sessions, advisor.ChatSession{
			SessionID:    info.ID,
			Ticker:       ticker,
			Title:        title,
			LastMessage:  agent.Truncate(info.Last.UserQuery, advisor.LastMessageMaxChars),
			Timestamp:    info.Last.Timestamp,
			MessageCount: info.Count,
		})
	}

	return advisor.WatchlistSessionsOutput{Sessions: sessions, Symbols: symbols}, nil
}

// DeleteSession forgets one watchlist conversation.
func (uc *implUseCase) DeleteSession(ctx context.Context, sessionID string) error {
	uc.resolver.Clear(sessionID)
	uc.l.Infof(ctx, "uc.DeleteSession: session %s deleted", sessionID)
	return nil
}

// watchlistSymbols loads the user's symbols, substituting the demo list
// when the watchlist is empty or unavailable.
func (uc *implUseCase) watchlistSymbols(ctx context.Context, userID int64) ([]string, error) {
	if uc.watchlist == nil {
		return slices.Clone(advisor.DemoWatchlist), nil
	}
	symbols, err := uc.watchlist.Symbols(ctx, userID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		uc.l.Warnf(ctx, "uc.watchlistSymbols user %d: %v", userID, err)
	}
	if len(symbols) == 0 {
		return slices.Clone(advisor.DemoWatchlist), nil
	}
	return symbols, nil
}

// parseWatchlistSession splits "watchlist_<ticker|general>_<user>". The
// ticker is empty for general sessions.
func parseWatchlistSession(id string) (ticker string, userID int64, ok bool) {
	rest, found := strings.CutPrefix(id, advisor.WatchlistSessionPrefix)
	if !found {
		return "", 0, false
	}
	i := strings.LastIndexByte(rest, '_')
	if i <= 0 {
		return "", 0, false
	}
	userID, err := strconv.ParseInt(rest[i+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	ticker = rest[:i]
	if ticker == advisor.WatchlistGeneral {
		ticker = ""
	}
	return ticker, userID, true
}

func userOrDefault(id int64) int64 {
	if id <= 0 {
		return advisor.DefaultUserID
	}
	return id
}
