package reflection

import (
	"context"

	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/Prokope45/Praestara/internal/generation"
)

// Input carries everything the engine needs to reflect on one check-in.
// All state is passed explicitly; the engine holds nothing between calls.
type Input struct {
	Type            domain.CheckinType
	Text            string
	Onboarding      map[string]any
	LastMorningText string
}

// Result is the engine's output, handed to an external collaborator for
// persistence. AlignmentScore is nil for morning check-ins and for owners
// with no declared domains.
type Result struct {
	Reply          string
	Source         string // "remote" or "deterministic"
	AlignmentScore *int
}

// Reply source names reported on Result.
const (
	SourceRemote        = "remote"
	SourceDeterministic = "deterministic"
)

// replySource attempts to produce a reply for a check-in. Returning
// ok=false means "no reply" and never an error: failure classes are
// absorbed inside the source.
type replySource interface {
	Name() string
	Reply(ctx context.Context, in Input) (reply string, ok bool)
}

// remoteSource asks the configured generation endpoint. Any failure —
// unconfigured endpoint, transport error, timeout, bad status, empty
// reply — collapses to absent.
type remoteSource struct {
	client generation.Client
}

func (s remoteSource) Name() string { return SourceRemote }

func (s remoteSource) Reply(ctx context.Context, in Input) (string, bool) {
	prompt := BuildPrompt(in.Type, in.Text, in.Onboarding, in.LastMorningText)
	reply, err := s.client.Generate(ctx, prompt)
	if err != nil || reply == "" {
		return "", false
	}
	return reply, true
}

// deterministicSource always answers, using the templated fallback.
type deterministicSource struct{}

func (deterministicSource) Name() string { return SourceDeterministic }

func (deterministicSource) Reply(_ context.Context, in Input) (string, bool) {
	return FallbackReply(in.Type, in.Text, in.Onboarding, in.LastMorningText), true
}

// Engine reflects on check-ins: first source that answers wins, and the
// deterministic source always answers, so Reflect always yields a reply.
type Engine struct {
	sources []replySource
}

// NewEngine creates an Engine preferring remote generation over the
// deterministic fallback.
func NewEngine(client generation.Client) *Engine {
	return &Engine{
		sources: []replySource{
			remoteSource{client: client},
			deterministicSource{},
		},
	}
}

// Reflect produces a reply and, for evening check-ins with declared
// domains, an alignment score. It never fails: generation problems are
// absorbed by the source chain.
func (e *Engine) Reflect(ctx context.Context, in Input) Result {
	var result Result
	for _, src := range e.sources {
		if reply, ok := src.Reply(ctx, in); ok {
			result.Reply = reply
			result.Source = src.Name()
			break
		}
	}

	if in.Type == domain.CheckinEvening {
		domains := ExtractDomains(in.Onboarding)
		missing := MissingDomains(in.Text, domains, DefaultImportanceThreshold)
		result.AlignmentScore = AlignmentScore(domains, missing)
	}

	return result
}
