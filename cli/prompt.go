package cli

import (
	"errors"
	"fmt"

	"github.com/amp-labs/bitonic/bitonic"
	"github.com/manifoldco/promptui"
	"golang.org/x/text/language"
)

var errEmpty = errors.New("you must enter something")

// PromptConfirm asks a yes/no question. Declining is not an error.
func (p *Prompter) PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptLanguage asks for a BCP 47 language tag, used for collated comparison.
func (p *Prompter) PromptLanguage(current string) (string, error) {
	prompt := promptui.Prompt{
		Label:    "Collation language",
		Default:  current,
		Validate: ValidateLanguage,
		Stdin:    p.stdin(),
		Stdout:   p.stdout(),
	}

	return prompt.Run()
}

// PromptPadding is asked when an input's length is not a power of two. It
// returns whether the caller should skip the input instead of failing.
func (p *Prompter) PromptPadding(name string, err *bitonic.LengthError) (bool, error) {
	return p.PromptConfirm(fmt.Sprintf("%s has %d lines, which is not a power of two. Skip it", name, err.Length))
}

// ValidateLanguage accepts any well-formed BCP 47 tag.
func ValidateLanguage(s string) error {
	if len(s) == 0 {
		return errEmpty
	}

	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("invalid language tag: %w", err)
	}

	return nil
}
