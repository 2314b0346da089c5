package report

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/sim"
)

// TOML writes the whole run as one TOML document when the run ends.
// Elections become an array of tables.
type TOML struct {
	w   io.Writer
	doc document
}

// NewTOML returns a TOML reporter writing to w.
func NewTOML(w io.Writer) *TOML {
	return &TOML{w: w}
}

// Begin records the run parameters.
func (t *TOML) Begin(p sim.Params) error {
	t.doc = document{Params: p, Elections: []electionRecord{}}
	return nil
}

// Election records one election.
func (t *TOML) Election(n int, res *election.Result) error {
	t.doc.Elections = append(t.doc.Elections, newElectionRecord(n, res))
	return nil
}

// End writes the document.
func (t *TOML) End(s *sim.Summary) error {
	t.doc.Summary = s

	enc := toml.NewEncoder(t.w)
	enc.Indent = "  "
	if err := enc.Encode(t.doc); err != nil {
		return fmt.Errorf("failed to write TOML report: %w", err)
	}
	return nil
}
