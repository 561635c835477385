package description

import (
	"context"
	"fmt"
	"strings"

	"meetspace/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts      = 5
	DefaultMaxGrammarIssues = 5
	DefaultMinReadability   = 50
)

// Result is the outcome of validating one draft.
type Result struct {
	OK     bool
	Issues []string
}

// Pipeline produces validated room descriptions: it generates a draft, runs the
// fact, grammar and readability checks in order, and retries on failure up to
// the attempt budget. Rounds are sequential; concurrent saves of different
// rooms each run their own pipeline invocation independently.
type Pipeline struct {
	gen              Generator
	grammar          GrammarChecker
	log              *zap.Logger
	maxAttempts      int
	maxGrammarIssues int
	minReadability   float64
}

func NewPipeline(gen Generator, grammar GrammarChecker, log *zap.Logger,
	maxAttempts, maxGrammarIssues int, minReadability float64) *Pipeline {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if maxGrammarIssues <= 0 {
		maxGrammarIssues = DefaultMaxGrammarIssues
	}
	if minReadability <= 0 {
		minReadability = DefaultMinReadability
	}
	return &Pipeline{
		gen:              gen,
		grammar:          grammar,
		log:              log,
		maxAttempts:      maxAttempts,
		maxGrammarIssues: maxGrammarIssues,
		minReadability:   minReadability,
	}
}

// Validate runs the validators in fixed order, stopping at the first failure.
// A grammar-service error is returned as an error, not folded into the Result;
// the retry loop treats it as a failed round.
func (p *Pipeline) Validate(ctx context.Context, text string, room *domain.Room) (Result, error) {
	if missing := MissingFacts(text, room); len(missing) > 0 {
		return Result{Issues: []string{
			fmt.Sprintf("missing fields: %s", strings.Join(missing, ", ")),
		}}, nil
	}

	matches, err := p.grammar.Check(ctx, text)
	if err != nil {
		return Result{}, err
	}
	if len(matches) > p.maxGrammarIssues {
		return Result{Issues: []string{
			fmt.Sprintf("too many grammar issues (%d)", len(matches)),
		}}, nil
	}

	score := FleschReadingEase(text)
	if score < p.minReadability {
		return Result{Issues: []string{
			fmt.Sprintf("low readability score (%.1f)", score),
		}}, nil
	}

	return Result{OK: true}, nil
}

// Describe returns an accepted description for the room, or "" when the
// attempt budget is exhausted. Generation and validation failures never
// escape: the caller persists the room either way.
func (p *Pipeline) Describe(ctx context.Context, room *domain.Room) string {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		prompt := BuildPrompt(room)

		draft, err := p.gen.Generate(ctx, prompt)
		if err != nil {
			p.log.Warn("description generation failed",
				zap.Int64("room_id", room.ID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		res, err := p.Validate(ctx, draft, room)
		if err != nil {
			p.log.Warn("description validation errored",
				zap.Int64("room_id", room.ID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}
		if res.OK {
			p.log.Info("description accepted",
				zap.Int64("room_id", room.ID),
				zap.Int("attempt", attempt))
			return draft
		}

		p.log.Warn("description rejected",
			zap.Int64("room_id", room.ID),
			zap.Int("attempt", attempt),
			zap.Strings("issues", res.Issues),
			zap.String("draft", draft))
	}

	p.log.Error("all description attempts failed, leaving description blank",
		zap.Int64("room_id", room.ID),
		zap.Int("max_attempts", p.maxAttempts))
	return ""
}
