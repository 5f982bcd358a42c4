package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/yahtzeebots/internal/statistics"
)

// RenderOptions control terminal output.
type RenderOptions struct {
	NoColor bool
}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	name   lipgloss.Style
	winner lipgloss.Style
	faint  lipgloss.Style
	border lipgloss.Style
}

func newStyles(w io.Writer, opts RenderOptions) styles {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		name:   r.NewStyle().Bold(true).Padding(0, 1),
		winner: r.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 1),
		faint:  r.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1),
		border: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (st styles) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...)
}

// Render writes the summary, pairwise tests and head-to-head matrix.
func Render(w io.Writer, r *Report, opts RenderOptions) error {
	st := newStyles(w, opts)

	m := r.Metadata
	header := fmt.Sprintf("Yahtzee simulation: %d games per strategy, seed %d, %d workers", m.Games, m.Seed, m.Workers)
	if m.Duration != "" {
		header += ", " + m.Duration
	}
	sections := []string{
		st.title.Render(header),
		st.title.Render("Scores"),
		summaryTable(st, r).String(),
		st.title.Render(fmt.Sprintf("Pairwise Welch t-tests (alpha %.2f)", m.Alpha)),
	}
	if len(r.Comparisons) == 0 {
		sections = append(sections, st.faint.Render("only one strategy, nothing to compare"))
	} else {
		sections = append(sections, comparisonTable(st, r).String())
	}
	sections = append(sections,
		st.title.Render("Head-to-head P(row beats column)"),
		headToHeadTable(st, r.HeadToHead).String(),
	)

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func summaryTable(st styles, r *Report) *table.Table {
	best := -1
	for i, s := range r.Strategies {
		if best < 0 || s.Summary.Mean > r.Strategies[best].Summary.Mean {
			best = i
		}
	}

	t := st.table("Strategy", "Fidelity", "Games", "Mean", "Median", "Std Dev", "95% CI", "Min", "Max")
	for _, s := range r.Strategies {
		sum := s.Summary
		t.Row(
			s.Name,
			s.Fidelity,
			fmt.Sprint(sum.Games),
			fmt.Sprintf("%.2f", sum.Mean),
			fmt.Sprintf("%.1f", sum.Median),
			fmt.Sprintf("%.2f", sum.StdDev),
			fmt.Sprintf("[%.2f, %.2f]", sum.CI95Low, sum.CI95High),
			fmt.Sprint(sum.Min),
			fmt.Sprint(sum.Max),
		)
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return st.header
		case row == best && col == 3:
			return st.winner
		case col == 0:
			return st.name
		}
		return st.cell
	})
}

func comparisonTable(st styles, r *Report) *table.Table {
	t := st.table("A", "B", "Diff", "t", "df", "p", "Cohen's d", "Result")
	for _, c := range r.Comparisons {
		result := statistics.InterpretPValue(c.PValue, r.Metadata.Alpha)
		if w := c.Winner(); w != "" {
			result = fmt.Sprintf("%s (%s higher)", result, w)
		}
		t.Row(
			c.A,
			c.B,
			fmt.Sprintf("%+.2f", c.Difference),
			fmt.Sprintf("%.3f", c.TStatistic),
			fmt.Sprintf("%.1f", c.DF),
			fmt.Sprintf("%.4g", c.PValue),
			fmt.Sprintf("%.2f (%s)", c.EffectSize, statistics.InterpretEffectSize(c.EffectSize)),
			result,
		)
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return st.header
		case col == 7 && r.Comparisons[row].Significant:
			return st.winner
		case col == 7:
			return st.faint
		}
		return st.cell
	})
}

func headToHeadTable(st styles, h statistics.HeadToHead) *table.Table {
	t := st.table(append([]string{""}, h.Names...)...)
	for i, name := range h.Names {
		row := []string{name}
		for j := range h.Names {
			row = append(row, fmt.Sprintf("%.3f", h.Win[i][j]))
		}
		t.Row(row...)
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return st.header
		case col == 0:
			return st.name
		case row == col-1:
			return st.faint
		case h.Win[row][col-1] > 0.5:
			return st.winner
		}
		return st.cell
	})
}
