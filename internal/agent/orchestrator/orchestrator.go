package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"financial-agent/internal/agent"
)

// Resolve answers one query. Fetch failures stay inside the returned
// dataset; only generation problems and caller cancellation return an error.
// The exchange is appended to the session only when generation succeeds and
// the caller is still waiting.
func (o *Orchestrator) Resolve(ctx context.Context, in Input) (Output, error) {
	if in.SessionID == "" {
		in.SessionID = DefaultSessionID
	}
	now := o.now()
	out := Output{
		Dataset:   agent.Dataset{},
		SessionID: in.SessionID,
		Timestamp: now,
	}

	if !o.generationAvailable() {
		o.l.Warnf(ctx, "%s: %v", LogPrefixResolve, ErrGenerationUnavailable)
		out.Error = ErrGenerationUnavailable.Error()
		out.ResponseText = MsgGenerationUnavailable
		return out, ErrGenerationUnavailable
	}

	ctx, span := o.tracer.Start(ctx, "orchestrator.Resolve",
		trace.WithAttributes(attribute.String("session_id", in.SessionID)))
	defer span.End()

	reqs := o.resolveRequests(in)
	span.SetAttributes(attribute.Int("requests", len(reqs)))
	o.l.Debugf(ctx, "%s: %d data request(s) for session %s", LogPrefixResolve, len(reqs), in.SessionID)

	out.Dataset = o.dispatcher.Dispatch(ctx, reqs)
	if err := ctx.Err(); err != nil {
		return out, err
	}

	history := o.sessions.Recent(in.SessionID, o.recentWindow)
	userContext := buildContext(in.Query, out.Dataset, in.UserContext, history)

	text, err := o.gen.Generate(ctx, buildSystemPrompt(now), userContext)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, ctxErr
		}
		gerr := &GenerationError{Query: in.Query, Err: err}
		span.RecordError(gerr)
		span.SetStatus(codes.Error, "generation failed")
		o.l.Errorf(ctx, "%s: %v", LogPrefixResolve, gerr)
		out.Error = gerr.Error()
		out.ResponseText = fmt.Sprintf(MsgGenerationFailed, in.Query)
		return out, gerr
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	o.sessions.Append(in.SessionID, agent.NewExchange(now, in.Query, text, o.summaryMax))
	out.ResponseText = text
	return out, nil
}

// History returns the full history of a session, oldest first.
func (o *Orchestrator) History(sessionID string) []agent.Exchange {
	return o.sessions.History(sessionID)
}

// Clear forgets a session.
func (o *Orchestrator) Clear(sessionID string) {
	o.sessions.Clear(sessionID)
}

// resolveRequests extracts tickers, classifies the query and applies the
// focused ticker override to every resolved request.
func (o *Orchestrator) resolveRequests(in Input) []agent.DataRequest {
	tickers := o.extractor.Extract(in.Query)
	reqs := o.classifier.Classify(in.Query, tickers)

	if focus := in.UserContext.FocusedTicker(); focus != "" {
		for i := range reqs {
			reqs[i] = reqs[i].WithTicker(focus)
		}
	}
	return agent.Dedupe(reqs)
}

func (o *Orchestrator) generationAvailable() bool {
	if o.gen == nil {
		return false
	}
	if a, ok := o.gen.(availability); ok {
		return a.Available()
	}
	return true
}

// IsUnavailable reports whether err means no generation backend is configured.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrGenerationUnavailable)
}

// IsGenerationError reports whether err came from the generation backend.
func IsGenerationError(err error) bool {
	var gerr *GenerationError
	return errors.As(err, &gerr)
}
