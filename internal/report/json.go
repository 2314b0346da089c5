package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/sim"
)

// JSON writes the whole run as one indented JSON document when the run
// ends.
type JSON struct {
	w   io.Writer
	doc document
}

// NewJSON returns a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Begin records the run parameters.
func (j *JSON) Begin(p sim.Params) error {
	j.doc = document{Params: p, Elections: []electionRecord{}}
	return nil
}

// Election records one election.
func (j *JSON) Election(n int, res *election.Result) error {
	j.doc.Elections = append(j.doc.Elections, newElectionRecord(n, res))
	return nil
}

// End writes the document.
func (j *JSON) End(s *sim.Summary) error {
	j.doc.Summary = s

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j.doc); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
