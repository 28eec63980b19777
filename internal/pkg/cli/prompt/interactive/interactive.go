// Package interactive implements the prompt on a real terminal,
// using the survey library.
package interactive

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
)

type Prompt struct {
	stdin       terminal.FileReader
	stdout      terminal.FileWriter
	stderr      terminal.FileWriter
	interactive bool
}

func New(stdin terminal.FileReader, stdout terminal.FileWriter, stderr terminal.FileWriter) *Prompt {
	return &Prompt{
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		interactive: isatty.IsTerminal(stdout.Fd()) || isatty.IsCygwinTerminal(stdout.Fd()),
	}
}

func (p *Prompt) IsInteractive() bool {
	return p.interactive
}

func (p *Prompt) Printf(format string, a ...any) {
	fmt.Fprintf(p.stdout, format+"\n", a...)
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	if c.Description != "" {
		p.Printf("\n%s", c.Description)
	}

	result := c.Default
	err := survey.AskOne(
		&survey.Confirm{Message: c.Label, Default: c.Default},
		&result,
		p.stdio(),
	)
	if err != nil {
		p.handleError(err)
		return false
	}
	return result
}

func (p *Prompt) Ask(q *prompt.Question) (string, bool) {
	if q.Description != "" {
		p.Printf("\n%s", q.Description)
	}

	var s survey.Prompt
	if q.Hidden {
		s = &survey.Password{Message: q.Label, Help: q.Help}
	} else {
		s = &survey.Input{Message: q.Label, Default: q.Default, Help: q.Help}
	}

	result := ""
	err := survey.AskOne(s, &result, p.opts(q.Validator)...)
	if err != nil {
		p.handleError(err)
		return "", false
	}

	// Masked prompts cannot show a default
	if q.Hidden && result == "" {
		result = q.Default
	}
	return result, true
}

func (p *Prompt) Select(s *prompt.Select) (string, bool) {
	if s.Description != "" {
		p.Printf("\n%s", s.Description)
	}

	question := &survey.Select{Message: s.Label, Options: s.Options}
	if s.UseDefault {
		question.Default = s.Default
	}

	result := ""
	err := survey.AskOne(question, &result, p.stdio())
	if err != nil {
		p.handleError(err)
		return "", false
	}
	return result, true
}

func (p *Prompt) SelectIndex(s *prompt.SelectIndex) (int, bool) {
	if s.Description != "" {
		p.Printf("\n%s", s.Description)
	}

	question := &survey.Select{Message: s.Label, Options: s.Options}
	if s.UseDefault {
		question.Default = s.Options[s.Default]
	}

	result := survey.OptionAnswer{}
	err := survey.AskOne(question, &result, p.stdio())
	if err != nil {
		p.handleError(err)
		return 0, false
	}
	return result.Index, true
}

func (p *Prompt) Multiline(q *prompt.Question) (string, bool) {
	if q.Description != "" {
		p.Printf("\n%s", q.Description)
	}

	result := ""
	err := survey.AskOne(
		&survey.Multiline{Message: q.Label, Default: q.Default, Help: q.Help},
		&result,
		p.opts(q.Validator)...,
	)
	if err != nil {
		p.handleError(err)
		return "", false
	}
	return result, true
}

func (p *Prompt) stdio() survey.AskOpt {
	return survey.WithStdio(p.stdin, p.stdout, p.stderr)
}

func (p *Prompt) opts(validator func(value any) error) []survey.AskOpt {
	opts := []survey.AskOpt{p.stdio()}
	if validator != nil {
		opts = append(opts, survey.WithValidator(validator))
	}
	return opts
}

func (p *Prompt) handleError(err error) {
	if err == terminal.InterruptErr {
		p.Printf("Aborted.")
		return
	}
	fmt.Fprintf(p.stderr, "%s\n", err)
}
