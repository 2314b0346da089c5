package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/sim"
)

var rule = strings.Repeat("-", 70)

// methodTitles are the section titles of the winner lists.
var methodTitles = map[election.Method]string{
	election.MethodPlurality:  "Plurality Winners:",
	election.MethodApproval:   "Approval Winners:",
	election.MethodAntagonist: "Antagonist Winners:",
}

// Text prints the human-readable report.
type Text struct {
	out    *errWriter
	opts   Options
	styles styles
}

// NewText returns a Text reporter writing to w.
func NewText(w io.Writer, opts Options) *Text {
	return &Text{
		out:    &errWriter{w: w},
		opts:   opts,
		styles: newStyles(w, opts.Color),
	}
}

// Begin prints the run header.
func (t *Text) Begin(p sim.Params) error {
	t.out.println(t.styles.title.Render("votesim"))
	t.out.println(t.styles.muted.Render(fmt.Sprintf(
		"%d issues, %d voters, %d elections, seed %d, %d workers",
		p.NumIssues, p.Population, p.Elections, p.Seed, p.Workers)))
	return t.out.err
}

// Election prints one election when the report is verbose.
func (t *Text) Election(n int, res *election.Result) error {
	if !t.opts.Verbose {
		return nil
	}

	t.out.println("")
	t.out.println(t.styles.heading.Render(fmt.Sprintf("========== ELECTION #%d ==========", n)))
	for i, c := range res.Candidates {
		t.out.println(CandidateLine(res, c, res.AntagonistVotes[i]))
	}
	t.out.println("")
	t.out.println(t.styles.rule.Render(rule))

	for _, m := range election.Methods() {
		t.out.println("")
		t.out.println(t.styles.section.Render(methodTitles[m]))
		for rank, i := range res.WinnerIndices(m) {
			t.out.printf("  %d) %s\n", rank+1, CandidateLine(res, res.Candidates[i], res.AntagonistVotes[i]))
		}
	}

	t.out.println("")
	t.out.println(t.styles.section.Render("Consensus Candidate:"))
	t.out.println(t.styles.consensus.Render("   > " + ConsensusLine(res)))

	t.out.println("")
	t.out.println(t.styles.section.Render("Two-Party Election:"))
	for rank, pole := range res.TwoParty {
		t.out.printf("  %d) %s\n", rank+1, PoleLine(res, pole))
	}

	t.out.println("")
	t.out.println(t.styles.rule.Render(rule))
	return t.out.err
}

// End prints the aggregate summary.
func (t *Text) End(s *sim.Summary) error {
	t.out.println("")
	t.out.println(t.styles.heading.Render("========== SUMMARY =========="))
	t.out.printf("%d elections, %.2f active candidates on average\n", s.Elections, s.MeanCandidates)
	t.out.println("")
	t.out.println(t.styles.muted.Render(fmt.Sprintf("%-12s %10s %6s %14s", "method", "agreement", "ties", "mean approval")))
	for _, m := range s.Methods {
		t.out.printf("%-12s %9.1f%% %6d %13.2f%%\n", m.Method, s.AgreementRate(m)*100, m.Ties, m.MeanApproval)
	}
	return t.out.err
}

// errWriter remembers the first write error and skips writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	ew.printf("%s\n", s)
}
