package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/yahtzeebots/internal/simulator"
)

type StrategiesCmd struct{}

func (c *StrategiesCmd) Run(g *Globals) error {
	return c.run(os.Stdout, g.NoColor)
}

func (c *StrategiesCmd) run(w io.Writer, noColor bool) error {
	r := newRenderer(w, noColor)
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	fast := r.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 1)

	catalog := simulator.Catalog()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Strategy", "Fidelity", "Description")
	for _, info := range catalog {
		t.Row(info.Name, string(info.Fidelity), info.Description)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return header
		case col == 1 && catalog[row].Fidelity == simulator.FastFidelity:
			return fast
		}
		return cell
	})

	_, err := fmt.Fprintln(w, t)
	return err
}
