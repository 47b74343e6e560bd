package trip

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/tripagent/internal/telemetry"
)

// Planner is the pipeline controller: a fixed two-step sequence, research then
// synthesis, over one State per invocation. There is no branching and no
// retrying; synthesis only ever runs after research has written SearchResults.
type Planner struct {
	research  *ResearchStage
	synthesis *SynthesisStage
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

// NewPlanner wires the two stages around the injected gateways. Both gateways
// are safe for use by concurrent invocations; each Run gets its own State.
func NewPlanner(searcher Searcher, llm Completer, maxResults int, logger *log.Logger, tele *telemetry.Telemetry) *Planner {
	return &Planner{
		research:  NewResearchStage(searcher, maxResults, logger, tele),
		synthesis: NewSynthesisStage(llm, logger, tele),
		logger:    logger,
		telemetry: tele,
	}
}

// Run executes one pipeline invocation. It returns a State with FinalTrip
// populated, or an error if the completion gateway failed; search failures
// never surface here.
func (p *Planner) Run(ctx context.Context, req Request) (*State, error) {
	runID := uuid.NewString()
	start := time.Now()
	st := &State{Request: req}

	p.logger.Printf("[%s] researching %s", runID, req.Country)
	p.research.Run(ctx, st)

	p.logger.Printf("[%s] synthesizing itinerary", runID)
	if err := p.synthesis.Run(ctx, st); err != nil {
		p.telemetry.RecordPipelineRun(false, time.Since(start))
		p.logger.Printf("[%s] failed: %v", runID, err)
		return nil, err
	}

	p.telemetry.RecordPipelineRun(true, time.Since(start))
	p.logger.Printf("[%s] done in %s", runID, time.Since(start).Round(time.Millisecond))
	return st, nil
}
