package simulator

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/fastsim"
	"github.com/lox/yahtzeebots/internal/game"
	"github.com/lox/yahtzeebots/internal/strategy"
)

// Entrant is anything that can play a game and report its total.
type Entrant interface {
	Name() string
	PlayGame(src dice.Source) (int, error)
}

// Fidelity says whether an entrant keeps a full scorecard.
type Fidelity string

const (
	FullFidelity Fidelity = "full"
	FastFidelity Fidelity = "fast"
)

// Info describes a registered entrant.
type Info struct {
	Name        string
	Fidelity    Fidelity
	Description string
}

type fullGame struct {
	engine *game.Engine
}

// FullGame plays s through the full thirteen-category engine.
func FullGame(s strategy.Strategy, logger zerolog.Logger) Entrant {
	return fullGame{engine: game.NewEngine(s, logger)}
}

func (f fullGame) Name() string { return f.engine.Strategy().Name() }

func (f fullGame) PlayGame(src dice.Source) (int, error) {
	return f.engine.Score(src)
}

var fastDescriptions = map[string]string{
	"dice-driven":    "keeps the most common face; Yahtzee, four and three of a kind once each",
	"upper-script":   "six upper-face turns then seven half-sum filler turns",
	"yahtzee-script": "chases five of a kind every turn with a third-sum filler",
	"hybrid":         "six upper-face turns then seven dice-driven turns",
}

// Catalog lists every entrant name, full-fidelity strategies first.
func Catalog() []Info {
	var infos []Info
	for _, name := range strategy.Names() {
		infos = append(infos, Info{Name: name, Fidelity: FullFidelity, Description: strategy.Describe(name)})
	}
	for _, name := range fastsim.Names() {
		infos = append(infos, Info{Name: name, Fidelity: FastFidelity, Description: fastDescriptions[name]})
	}
	return infos
}

// Names lists every entrant name.
func Names() []string {
	infos := Catalog()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// DefaultNames lists the full-fidelity strategies.
func DefaultNames() []string {
	return strategy.Names()
}

// Known reports whether name is registered.
func Known(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Lookup builds the named entrant. Full-fidelity engines log turns to logger.
func Lookup(name string, logger zerolog.Logger) (Entrant, error) {
	if s, err := strategy.New(name); err == nil {
		return FullGame(s, logger), nil
	}
	if s, err := fastsim.New(name); err == nil {
		return s, nil
	}
	return nil, fmt.Errorf("unknown strategy %q (choose from %s)", name, strings.Join(Names(), ", "))
}

// LookupAll builds every named entrant, failing on the first unknown name.
func LookupAll(names []string, logger zerolog.Logger) ([]Entrant, error) {
	entrants := make([]Entrant, 0, len(names))
	for _, name := range names {
		e, err := Lookup(name, logger)
		if err != nil {
			return nil, err
		}
		entrants = append(entrants, e)
	}
	return entrants, nil
}
