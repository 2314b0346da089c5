package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/sim"
)

// YAML writes the whole run as one YAML document when the run ends.
type YAML struct {
	w   io.Writer
	doc document
}

// NewYAML returns a YAML reporter writing to w.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

// Begin records the run parameters.
func (y *YAML) Begin(p sim.Params) error {
	y.doc = document{Params: p, Elections: []electionRecord{}}
	return nil
}

// Election records one election.
func (y *YAML) Election(n int, res *election.Result) error {
	y.doc.Elections = append(y.doc.Elections, newElectionRecord(n, res))
	return nil
}

// End writes the document.
func (y *YAML) End(s *sim.Summary) error {
	y.doc.Summary = s

	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.doc); err != nil {
		return fmt.Errorf("failed to write YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write YAML report: %w", err)
	}
	return nil
}
