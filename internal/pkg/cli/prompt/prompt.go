// Package prompt abstracts the operator interaction, so dialogs can be
// tested without a terminal. The interactive implementation is one of
// several, see the sub-packages.
package prompt

type Question struct {
	Label       string
	Description string
	Help        string
	Default     string
	Validator   func(value any) error
	Hidden      bool // masked input, for secrets
}

type Confirm struct {
	Label       string
	Description string
	Default     bool
}

type Select struct {
	Label       string
	Description string
	Options     []string
	Default     string
	UseDefault  bool
}

type SelectIndex struct {
	Label       string
	Description string
	Options     []string
	Default     int
	UseDefault  bool
}

// Prompt is the interface the dialogs are driven by. Every method
// returns ok=false when the operator cancelled the prompt.
type Prompt interface {
	IsInteractive() bool
	Printf(format string, a ...any)
	Confirm(c *Confirm) bool
	Ask(q *Question) (value string, ok bool)
	Select(s *Select) (value string, ok bool)
	SelectIndex(s *SelectIndex) (index int, ok bool)
	Multiline(q *Question) (value string, ok bool)
}
