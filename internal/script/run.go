package script

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/unitconv/internal/history"
	"github.com/roach88/unitconv/internal/session"
	"github.com/roach88/unitconv/internal/units"
)

// Step kinds reported in Outcome.Step.
const (
	StepConvert = "convert"
	StepSave    = "save"
	StepHistory = "history"
)

// ErrNoAction is returned for a step with no action set.
var ErrNoAction = errors.New("no action")

// Outcome is the visible result of one step.
type Outcome struct {
	Step       string            `json:"step"`
	Conversion *units.Conversion `json:"conversion,omitempty"`
	Record     *history.Record   `json:"record,omitempty"`
	History    []history.Record  `json:"history,omitempty"`

	// Err is a recoverable failure of the step (unknown unit, nothing to save).
	Err error `json:"-"`
}

// Lines renders the outcome the way the interactive session prints it.
func (o Outcome) Lines() []string {
	if o.Err != nil {
		return []string{"error: " + o.Err.Error()}
	}
	switch o.Step {
	case StepConvert:
		return []string{o.Conversion.String()}
	case StepSave:
		return []string{"saved: " + o.Record.Display()}
	case StepHistory:
		return history.Render(o.History)
	}
	return nil
}

// Exec performs one step on s.
// The returned error is set only when the session's history cannot be read;
// step failures are reported in Outcome.Err.
func Exec(ctx context.Context, step Step, s *session.Session) (Outcome, error) {
	switch {
	case step.Convert != nil:
		c := step.Convert
		conv, err := s.ConvertLabels(ctx, c.Category, c.Value, c.From, c.To)
		if err != nil {
			return Outcome{Step: StepConvert, Err: err}, nil
		}
		return Outcome{Step: StepConvert, Conversion: &conv}, nil

	case step.Save:
		rec, err := s.Save(ctx)
		if err != nil {
			return Outcome{Step: StepSave, Err: err}, nil
		}
		return Outcome{Step: StepSave, Record: &rec}, nil

	case step.History:
		records, err := s.History(ctx)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Step: StepHistory, History: records}, nil
	}

	return Outcome{}, ErrNoAction
}

// Transcript is the visible output of a script run.
type Transcript struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// String renders the transcript with a header line and a trailing newline.
func (t *Transcript) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", t.Name)
	for _, line := range t.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Run executes the script's steps against s in order and collects the
// transcript. Step failures become "error: ..." lines.
func Run(ctx context.Context, sc *Script, s *session.Session) (*Transcript, error) {
	t := &Transcript{Name: sc.Name, Lines: []string{}}

	for i, step := range sc.Steps {
		out, err := Exec(ctx, step, s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		t.Lines = append(t.Lines, out.Lines()...)
	}

	return t, nil
}
