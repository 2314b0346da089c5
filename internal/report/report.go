package report

import (
	"fmt"
	"io"

	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/sim"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatTOML = "toml"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatCSV}
}

// Reporter renders one run. Begin is called once before any election,
// Election once per election in order, and End once with the summary.
type Reporter interface {
	Begin(p sim.Params) error
	Election(n int, res *election.Result) error
	End(s *sim.Summary) error
}

// Options tunes the reporters that support it.
type Options struct {
	// Verbose includes every election in the text report.
	Verbose bool
	// Color styles the text report.
	Color bool
}

// New returns the Reporter for format writing to w.
func New(format string, w io.Writer, opts Options) (Reporter, error) {
	switch format {
	case FormatText:
		return NewText(w, opts), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatYAML:
		return NewYAML(w), nil
	case FormatTOML:
		return NewTOML(w), nil
	case FormatCSV:
		return NewCSV(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownFormat, format)
	}
}
