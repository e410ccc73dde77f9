package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
	"financial-agent/internal/marketdata"
)

type fakeAdvisor struct {
	chats    []advisor.ChatInput
	cleared  []string
	dataIn   advisor.FinancialDataInput
	chatErr  error
	dataErr  error
	response string
}

func (f *fakeAdvisor) Chat(_ context.Context, input advisor.ChatInput) (advisor.Answer, error) {
	f.chats = append(f.chats, input)
	if f.chatErr != nil {
		return advisor.Answer{}, f.chatErr
	}
	return advisor.Answer{
		Response:  f.response,
		SessionID: input.SessionID,
		Dataset: agent.Dataset{
			agent.ToolNews:      agent.Success(agent.Document{"news": []any{}}),
			agent.ToolStockInfo: agent.Failure("timeout"),
		},
	}, nil
}

func (f *fakeAdvisor) ClearHistory(_ context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}

func (f *fakeAdvisor) FinancialData(_ context.Context, input advisor.FinancialDataInput) (advisor.FinancialDataOutput, error) {
	f.dataIn = input
	if f.dataErr != nil {
		return advisor.FinancialDataOutput{}, f.dataErr
	}
	return advisor.FinancialDataOutput{
		Ticker:   strings.ToUpper(input.Ticker),
		DataType: input.DataType,
		Data:     marketdata.Document{"current_price": 189.5},
	}, nil
}

func executeCLI(t *testing.T, fake *fakeAdvisor, stdin string, args ...string) (string, error) {
	t.Helper()

	wire := func(context.Context, wireOptions) (*app, error) {
		return &app{advisor: fake}, nil
	}

	cmd := newRootCmd(wire)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestAskPrintsAnswerAndSources(t *testing.T) {
	fake := &fakeAdvisor{response: "Tesla headlines..."}

	out, err := executeCLI(t, fake, "", "ask", "What's", "the", "latest", "news", "on", "Tesla?")
	require.NoError(t, err)

	require.Len(t, fake.chats, 1)
	assert.Equal(t, "What's the latest news on Tesla?", fake.chats[0].Query)
	assert.Equal(t, defaultCLISession, fake.chats[0].SessionID)
	assert.Nil(t, fake.chats[0].UserContext)

	assert.Contains(t, out, "Tesla headlines...")
	assert.Contains(t, out, "✓ NEWS")
	assert.Contains(t, out, "✗ STOCK_INFO (timeout)")
}

func TestAskFocusAndSession(t *testing.T) {
	fake := &fakeAdvisor{response: "ok"}

	_, err := executeCLI(t, fake, "", "ask", "--session", "research", "--focus", "nvda", "how did it do?")
	require.NoError(t, err)

	require.Len(t, fake.chats, 1)
	assert.Equal(t, "research", fake.chats[0].SessionID)
	assert.Equal(t, "NVDA", fake.chats[0].UserContext.FocusedTicker())
}

func TestAskRequiresQuery(t *testing.T) {
	fake := &fakeAdvisor{}

	_, err := executeCLI(t, fake, "", "ask")
	require.ErrorIs(t, err, errQueryRequired)
	assert.Empty(t, fake.chats)
}

func TestAskGenerationUnavailable(t *testing.T) {
	fake := &fakeAdvisor{chatErr: advisor.ErrGenerationUnavailable}

	_, err := executeCLI(t, fake, "", "ask", "AAPL news")
	require.ErrorIs(t, err, advisor.ErrGenerationUnavailable)
}

func TestAskInteractive(t *testing.T) {
	fake := &fakeAdvisor{response: "answer"}

	out, err := executeCLI(t, fake, "AAPL news\n\nclear\nMSFT price\nexit\nignored\n", "ask", "-i", "-s", "s1")
	require.NoError(t, err)

	require.Len(t, fake.chats, 2)
	assert.Equal(t, "AAPL news", fake.chats[0].Query)
	assert.Equal(t, "MSFT price", fake.chats[1].Query)
	assert.Equal(t, []string{"s1"}, fake.cleared)
	assert.Contains(t, out, "History cleared.")
}

func TestAskInteractiveKeepsGoingAfterError(t *testing.T) {
	fake := &fakeAdvisor{chatErr: errors.New("boom")}

	out, err := executeCLI(t, fake, "first\nsecond\n", "ask", "--interactive")
	require.NoError(t, err)
	assert.Len(t, fake.chats, 2)
	assert.Contains(t, out, "error: boom")
}

func TestDataDefaultsToComprehensive(t *testing.T) {
	fake := &fakeAdvisor{}

	out, err := executeCLI(t, fake, "", "data", "aapl")
	require.NoError(t, err)

	assert.Equal(t, "aapl", fake.dataIn.Ticker)
	assert.Equal(t, marketdata.DataTypeComprehensive, fake.dataIn.DataType)
	assert.Contains(t, out, "AAPL COMPREHENSIVE")
	assert.Contains(t, out, `"current_price": 189.5`)
}

func TestDataPassesTypeAndPeriod(t *testing.T) {
	fake := &fakeAdvisor{}

	_, err := executeCLI(t, fake, "", "data", "MSFT", "--type", "historical", "--period", "6mo")
	require.NoError(t, err)
	assert.Equal(t, advisor.FinancialDataInput{Ticker: "MSFT", DataType: "historical", Period: "6mo"}, fake.dataIn)
}

func TestDataInvalidType(t *testing.T) {
	fake := &fakeAdvisor{dataErr: advisor.ErrInvalidDataType}

	_, err := executeCLI(t, fake, "", "data", "MSFT", "--type", "bogus")
	require.ErrorIs(t, err, advisor.ErrInvalidDataType)
	assert.Contains(t, err.Error(), marketdata.DataTypeRecommendations)
}

func TestDataRequiresTicker(t *testing.T) {
	_, err := executeCLI(t, &fakeAdvisor{}, "", "data")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := executeCLI(t, &fakeAdvisor{}, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "finagent dev\n", out)
}
