package description

import (
	"context"
	"errors"
	"testing"

	"meetspace/internal/pkg/languagetool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const goodDraft = "Brooklyn is a warm meeting room in Building B on floor 2. " +
	"It seats 8 people. It is active. It has a projector and a whiteboard."

// badDraft fails the fact check: no capacity, wrong everything.
const badDraft = "A lovely space for getting together."

type scriptedGenerator struct {
	calls  int
	drafts []string
	errs   []error
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	i := g.calls
	g.calls++
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.drafts) {
		return g.drafts[i], nil
	}
	return g.drafts[len(g.drafts)-1], nil
}

type stubGrammar struct {
	calls   int
	matches []languagetool.Match
	err     error
}

func (g *stubGrammar) Check(ctx context.Context, text string) ([]languagetool.Match, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.matches, nil
}

func newTestPipeline(gen Generator, grammar GrammarChecker) *Pipeline {
	return NewPipeline(gen, grammar, zap.NewNop(), 5, 5, 50)
}

func TestPipelineAcceptsFirstGoodDraft(t *testing.T) {
	gen := &scriptedGenerator{drafts: []string{goodDraft}}
	grammar := &stubGrammar{}
	p := newTestPipeline(gen, grammar)

	got := p.Describe(context.Background(), testRoom())

	assert.Equal(t, goodDraft, got)
	assert.Equal(t, 1, gen.calls)
}

func TestPipelineRetriesUntilAcceptable(t *testing.T) {
	gen := &scriptedGenerator{drafts: []string{badDraft, badDraft, badDraft, badDraft, goodDraft}}
	grammar := &stubGrammar{}
	p := newTestPipeline(gen, grammar)

	got := p.Describe(context.Background(), testRoom())

	assert.Equal(t, goodDraft, got)
	assert.Equal(t, 5, gen.calls)
}

func TestPipelineExhaustsToBlank(t *testing.T) {
	gen := &scriptedGenerator{drafts: []string{badDraft}}
	grammar := &stubGrammar{}
	p := newTestPipeline(gen, grammar)

	got := p.Describe(context.Background(), testRoom())

	assert.Equal(t, "", got)
	assert.Equal(t, 5, gen.calls)
}

func TestPipelineGenerationErrorConsumesAttempts(t *testing.T) {
	boom := errors.New("upstream quota exceeded")
	gen := &scriptedGenerator{
		drafts: []string{"", "", "", "", ""},
		errs:   []error{boom, boom, boom, boom, boom},
	}
	grammar := &stubGrammar{}
	p := newTestPipeline(gen, grammar)

	got := p.Describe(context.Background(), testRoom())

	assert.Equal(t, "", got)
	assert.Equal(t, 5, gen.calls)
	assert.Zero(t, grammar.calls)
}

func TestPipelineGrammarServiceErrorFailsRound(t *testing.T) {
	gen := &scriptedGenerator{drafts: []string{goodDraft}}
	grammar := &stubGrammar{err: errors.New("languagetool unreachable")}
	p := newTestPipeline(gen, grammar)

	got := p.Describe(context.Background(), testRoom())

	assert.Equal(t, "", got)
	assert.Equal(t, 5, gen.calls)
	assert.Equal(t, 5, grammar.calls)
}

func TestValidateShortCircuitsOnMissingFacts(t *testing.T) {
	grammar := &stubGrammar{}
	p := newTestPipeline(&scriptedGenerator{drafts: []string{badDraft}}, grammar)

	res, err := p.Validate(context.Background(), badDraft, testRoom())

	require.NoError(t, err)
	assert.False(t, res.OK)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0], "missing fields")
	assert.Zero(t, grammar.calls, "grammar must not run once the fact check fails")
}

func TestValidateGrammarThreshold(t *testing.T) {
	sixIssues := make([]languagetool.Match, 6)
	grammar := &stubGrammar{matches: sixIssues}
	p := newTestPipeline(&scriptedGenerator{drafts: []string{goodDraft}}, grammar)

	res, err := p.Validate(context.Background(), goodDraft, testRoom())

	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Contains(t, res.Issues[0], "too many grammar issues (6)")
}

func TestValidateGrammarAtThresholdPasses(t *testing.T) {
	fiveIssues := make([]languagetool.Match, 5)
	grammar := &stubGrammar{matches: fiveIssues}
	p := newTestPipeline(&scriptedGenerator{drafts: []string{goodDraft}}, grammar)

	res, err := p.Validate(context.Background(), goodDraft, testRoom())

	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestValidateLowReadabilityFails(t *testing.T) {
	// States every fact but in one impenetrable sentence.
	dense := "Brooklyn, an organizationally multifunctional meeting room configuration " +
		"accommodating approximately 8 participants, miscellaneously situated on floor 2 " +
		"of Building B, necessitates comprehensive administrative prioritization of " +
		"interdepartmental communication infrastructure considerations notwithstanding"
	grammar := &stubGrammar{}
	p := newTestPipeline(&scriptedGenerator{drafts: []string{dense}}, grammar)

	res, err := p.Validate(context.Background(), dense, testRoom())

	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Contains(t, res.Issues[0], "low readability score")
}

func TestBuildPromptDeterministic(t *testing.T) {
	room := testRoom()
	p1 := BuildPrompt(room)
	p2 := BuildPrompt(room)

	assert.Equal(t, p1, p2)
	assert.Contains(t, p1, "Brooklyn")
	assert.Contains(t, p1, "meeting room")
	assert.Contains(t, p1, "seats exactly 8 people")
	assert.Contains(t, p1, "floor 2 of Building B")
	assert.Contains(t, p1, "currently active")
	assert.Contains(t, p1, "Projector, Whiteboard")
}
