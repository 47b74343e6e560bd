package trip

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/voyago/tripagent/internal/telemetry"
)

// Completer is the completion gateway consumed by the synthesis stage.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SynthesisStage turns the gathered research into the final itinerary. Unlike
// research it is fail-hard: a completion failure propagates, because there is
// no acceptable fallback itinerary.
type SynthesisStage struct {
	llm       Completer
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

func NewSynthesisStage(llm Completer, logger *log.Logger, tele *telemetry.Telemetry) *SynthesisStage {
	return &SynthesisStage{llm: llm, logger: logger, telemetry: tele}
}

// Run renders the prompt from the full state and writes the generated text
// into st.FinalTrip.
func (s *SynthesisStage) Run(ctx context.Context, st *State) error {
	prompt := RenderPrompt(st)

	start := time.Now()
	text, err := s.llm.Complete(ctx, prompt)
	s.telemetry.RecordCompletion(time.Since(start))
	if err != nil {
		return fmt.Errorf("generating itinerary: %w", err)
	}

	st.FinalTrip = text
	return nil
}
