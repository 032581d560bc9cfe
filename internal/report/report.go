// Package report renders cycle reports for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

var (
	green  = lipgloss.Color("#50fa7b")
	red    = lipgloss.Color("#ff5555")
	yellow = lipgloss.Color("#f1fa8c")
	grey   = lipgloss.Color("#6272a4")

	headerStyle = lipgloss.NewStyle().Bold(true)

	statusStyles = map[wagers.BetStatus]lipgloss.Style{
		wagers.StatusWin:      lipgloss.NewStyle().Foreground(green).Bold(true),
		wagers.StatusLose:     lipgloss.NewStyle().Foreground(red).Bold(true),
		wagers.StatusPending:  lipgloss.NewStyle().Foreground(yellow),
		wagers.StatusNotFound: lipgloss.NewStyle().Foreground(grey),
	}
)

var columns = []string{"MATCH", "KICKOFF", "SCORE", "STATUS", "BET", "RESULT", "REASON", "COMPETITION", "PROVIDER", "CONF"}

const resultColumn = 5

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r tracker.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Table writes an aligned text table followed by a one-line summary. When
// styled is set the header and bet results are colored.
func Table(w io.Writer, r tracker.Report, styled bool) error {
	cells := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells = append(cells, rowCells(row))
	}

	widths := make([]int, len(columns))
	for i, h := range columns {
		widths[i] = lipgloss.Width(h)
	}
	for _, line := range cells {
		for i, c := range line {
			if cw := lipgloss.Width(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Date %s  cycle %s\n", r.Date, r.CycleID)
	header := make([]string, len(columns))
	for i, h := range columns {
		header[i] = pad(h, widths[i])
		if styled {
			header[i] = headerStyle.Render(header[i])
		}
	}
	b.WriteString(strings.TrimRight(strings.Join(header, "  "), " "))
	b.WriteByte('\n')

	for ri, line := range cells {
		out := make([]string, len(line))
		for i, c := range line {
			out[i] = pad(c, widths[i])
			if styled && i == resultColumn {
				if style, ok := statusStyles[r.Rows[ri].BetStatus]; ok {
					out[i] = style.Render(c) + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
				}
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(out, "  "), " "))
		b.WriteByte('\n')
	}
	b.WriteString(summary(r))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func rowCells(row tracker.Row) []string {
	reason := row.Reason
	if row.Error != nil && row.Error.Message != "" {
		reason = reason + " (" + row.Error.Message + ")"
	}
	conf := "-"
	if row.Confidence > 0 {
		conf = fmt.Sprintf("%.2f", row.Confidence)
	}
	return []string{
		row.Match,
		row.Kickoff,
		row.Score,
		row.MatchStatus,
		row.Bet,
		string(row.BetStatus),
		reason,
		dash(row.Competition),
		dash(row.Provider),
		conf,
	}
}

func summary(r tracker.Report) string {
	counts := r.Counts()
	state := "watching"
	if r.AllSettled {
		state = "settled"
	}
	return fmt.Sprintf("%d wagers: %d won, %d lost, %d pending, %d not found (%s)",
		len(r.Rows),
		counts[wagers.StatusWin],
		counts[wagers.StatusLose],
		counts[wagers.StatusPending],
		counts[wagers.StatusNotFound],
		state,
	)
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
