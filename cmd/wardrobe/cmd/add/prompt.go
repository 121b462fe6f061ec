package add

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/wardrobe/internal/validation"
	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// prompter asks for missing item tags one line at a time.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

// complete fills every empty field of in. Answers are taken as typed;
// normalization happens later.
func (p *prompter) complete(in *validation.ItemInput) error {
	steps := []struct {
		field  *string
		prompt string
		menu   []string
	}{
		{&in.ID, "Item name", nil},
		{&in.Type, "Type: (t)op, (b)ottom, (j)acket, (a)ccessory", nil},
		{&in.Colour, "Colour", nil},
		{&in.Fit, "Fit", catalogs.Fits()},
		{&in.Mood, "Mood", nil},
		{&in.DressCode, "Dress code", catalogs.DressCodes()},
	}

	for _, s := range steps {
		if *s.field != "" {
			continue
		}
		answer, err := p.ask(s.prompt, s.menu)
		if err != nil {
			return err
		}
		*s.field = answer
	}
	return nil
}

// ask prints a prompt, with a numbered menu when given, and reads one
// line. End of input yields an empty answer.
func (p *prompter) ask(prompt string, menu []string) (string, error) {
	for i, entry := range menu {
		if _, err := fmt.Fprintf(p.out, "  %d. %s\n", i+1, entry); err != nil {
			return "", err
		}
	}
	if _, err := fmt.Fprintf(p.out, "%s: ", prompt); err != nil {
		return "", err
	}

	if !p.in.Scan() {
		return "", p.in.Err()
	}
	return strings.TrimSpace(p.in.Text()), nil
}
