package explore

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/handiism/bikeshare/internal/model"
)

// Prompter reads answers to console questions, one per line.
//
// Every method returns io.EOF once input is exhausted so callers can stop
// instead of re-prompting forever.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask writes prompt and returns the next line of input with surrounding
// whitespace removed.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askUntil asks prompt, then retry, until accept succeeds on the answer.
func (p *Prompter) askUntil(prompt, retry string, accept func(string) error) error {
	answer, err := p.Ask(prompt)
	for {
		if err != nil {
			return err
		}
		if accept(answer) == nil {
			return nil
		}
		answer, err = p.Ask(retry)
	}
}

// Filters asks for a city, month and day until each is valid, then shows the
// selection and asks for confirmation. A rejected selection starts over.
func (p *Prompter) Filters() (model.Filter, error) {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	for {
		var f model.Filter

		err := p.askUntil("Which city? (Chicago, New York City or Washington): ",
			"Please enter one of Chicago, New York City or Washington: ",
			func(s string) (err error) {
				f.City, err = model.ParseCity(s)
				return err
			})
		if err != nil {
			return model.Filter{}, err
		}

		err = p.askUntil("Which month? (all, January, February, ... December): ",
			`Please enter "all" or a valid month e.g. "January": `,
			func(s string) (err error) {
				f.Month, err = model.ParseMonth(s)
				return err
			})
		if err != nil {
			return model.Filter{}, err
		}

		err = p.askUntil("Which day? (all, Monday, Tuesday, ... Sunday): ",
			`Please enter "all" or a valid day e.g. "Monday": `,
			func(s string) (err error) {
				f.Day, err = model.ParseDay(s)
				return err
			})
		if err != nil {
			return model.Filter{}, err
		}

		fmt.Fprintf(p.out, "You selected %s\n", f)
		ok, err := p.YesNo("Is this correct? Y/N: ")
		if err != nil {
			return model.Filter{}, err
		}
		if ok {
			return f, nil
		}
	}
}

// YesNo asks a yes/no question until ParseYesNo accepts the answer.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	var yes bool
	err := p.askUntil(prompt, "Please enter a valid input: Y/N: ", func(s string) (err error) {
		yes, err = ParseYesNo(s)
		return err
	})
	return yes, err
}

// ParseYesNo accepts y, yes, n and no in any case.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("not a yes/no answer: %q", s)
}

// Yes asks once and reports whether the answer was y or yes. Any other answer
// counts as no.
func (p *Prompter) Yes(prompt string) (bool, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
