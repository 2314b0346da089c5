package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/sim"
)

// csvHeader names the columns of the CSV export: one row per active
// candidate per election.
var csvHeader = []string{
	"election", "id", "platform", "votes",
	"pro", "contra", "medius", "sum_disapproval", "approval",
	"antagonist", "antagonist_votes",
	"plurality_winner", "approval_winner", "antagonist_winner",
}

// CSV streams one row per candidate as elections complete. The summary
// is not part of the export.
type CSV struct {
	w *csv.Writer
}

// NewCSV returns a CSV reporter writing to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

// Begin writes the header row.
func (c *CSV) Begin(sim.Params) error {
	return c.write(csvHeader)
}

// Election writes the candidate rows of one election.
func (c *CSV) Election(n int, res *election.Result) error {
	u := func(v uint64) string { return strconv.FormatUint(v, 10) }

	for i, cand := range res.Candidates {
		row := []string{
			strconv.Itoa(n),
			u(uint64(cand.ID)),
			cand.ID.Binary(res.NumIssues),
			u(cand.Votes),
			u(cand.Pro),
			u(cand.Contra),
			u(cand.Medius),
			u(cand.SumDisapproval),
			strconv.FormatFloat(res.ApprovalOf(cand), 'f', 2, 64),
			u(uint64(cand.Antagonist)),
			u(res.AntagonistVotes[i]),
		}
		for _, m := range election.Methods() {
			row = append(row, strconv.FormatBool(slices.Contains(res.WinnerIndices(m), i)))
		}
		if err := c.write(row); err != nil {
			return err
		}
	}
	c.w.Flush()
	return c.w.Error()
}

// End flushes any buffered rows.
func (c *CSV) End(*sim.Summary) error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

func (c *CSV) write(row []string) error {
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}
