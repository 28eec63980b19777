// Package scripted implements the prompt for tests: answers are queued
// up front and consumed in order. A question with no queued answer gets
// its default, like the nop prompt.
package scripted

import (
	"fmt"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
)

type answer struct {
	value string
	index int
	flag  bool
	ok    bool
}

type Prompt struct {
	answers []answer
	asked   []string // labels of all asked questions, in order
}

func New() *Prompt {
	return &Prompt{}
}

// AddConfirm queues an answer for the next Confirm call.
func (p *Prompt) AddConfirm(value bool) *Prompt {
	p.answers = append(p.answers, answer{flag: value, ok: true})
	return p
}

// AddAnswer queues an answer for the next Ask/Select/Multiline call.
func (p *Prompt) AddAnswer(value string) *Prompt {
	p.answers = append(p.answers, answer{value: value, ok: true})
	return p
}

// AddIndex queues an answer for the next SelectIndex call.
func (p *Prompt) AddIndex(value int) *Prompt {
	p.answers = append(p.answers, answer{index: value, ok: true})
	return p
}

// AddCancel queues a cancelled prompt.
func (p *Prompt) AddCancel() *Prompt {
	p.answers = append(p.answers, answer{ok: false})
	return p
}

// Asked returns the labels of all asked questions, in order.
func (p *Prompt) Asked() []string {
	return p.asked
}

func (p *Prompt) IsInteractive() bool {
	return true
}

func (p *Prompt) Printf(_ string, _ ...any) {
	// nop
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	p.asked = append(p.asked, c.Label)
	if a, found := p.next(); found {
		return a.ok && a.flag
	}
	return c.Default
}

func (p *Prompt) Ask(q *prompt.Question) (string, bool) {
	p.asked = append(p.asked, q.Label)
	if a, found := p.next(); found {
		if !a.ok {
			return "", false
		}
		if q.Validator != nil {
			if err := q.Validator(a.value); err != nil {
				panic(fmt.Errorf(`invalid scripted answer "%s" for "%s": %w`, a.value, q.Label, err))
			}
		}
		return a.value, true
	}
	return q.Default, true
}

func (p *Prompt) Select(s *prompt.Select) (string, bool) {
	p.asked = append(p.asked, s.Label)
	if a, found := p.next(); found {
		return a.value, a.ok
	}
	return s.Default, s.UseDefault
}

func (p *Prompt) SelectIndex(s *prompt.SelectIndex) (int, bool) {
	p.asked = append(p.asked, s.Label)
	if a, found := p.next(); found {
		return a.index, a.ok
	}
	return s.Default, s.UseDefault
}

func (p *Prompt) Multiline(q *prompt.Question) (string, bool) {
	p.asked = append(p.asked, q.Label)
	if a, found := p.next(); found {
		return a.value, a.ok
	}
	return q.Default, true
}

func (p *Prompt) next() (answer, bool) {
	if len(p.answers) == 0 {
		return answer{}, false
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}
