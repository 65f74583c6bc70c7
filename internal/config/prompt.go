package config

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/assemble"
)

var (
	// ErrNoTerminal is returned when prompting is requested without an
	// interactive terminal on stdin.
	ErrNoTerminal = errors.New("prompting needs an interactive terminal")

	// ErrAborted is returned when the user interrupts a prompt.
	ErrAborted = errors.New("prompt aborted")
)

// InputConfig configures one text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Prompter asks the user for values. The survey implementation needs a real
// terminal; tests use a stub.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

type surveyPrompter struct{}

// NewSurveyPrompter returns a terminal Prompter, or ErrNoTerminal when stdin
// is not a terminal.
func NewSurveyPrompter() (Prompter, error) {
	if !IsTerminal(os.Stdin.Fd()) {
		return nil, ErrNoTerminal
	}

	return &surveyPrompter{}, nil
}

// IsTerminal reports whether fd is an interactive terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *surveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string

	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}

	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}

	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}

	return strings.TrimSpace(out), nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}

	return err
}

// ValidateEmail accepts an empty answer or a single address.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("not an email address: %w", err)
	}

	return nil
}

// PromptDefaults asks for each caller default that is still empty. env values
// are offered as the prompt default. An empty answer leaves the value unset so
// the later tiers still apply.
func PromptDefaults(ctx context.Context, p Prompter, caller, env assemble.Defaults) (assemble.Defaults, error) {
	questions := []struct {
		target *string
		cfg    InputConfig
	}{
		{&caller.Contributor, InputConfig{
			Message: "Default author name:",
			Default: env.Contributor,
			Help:    "Used when a row has no author, depositor or contact name.",
		}},
		{&caller.ContactEmail, InputConfig{
			Message:   "Default contact email:",
			Default:   env.ContactEmail,
			Help:      "Used when a row has no contact email.",
			Validator: ValidateEmail,
		}},
		{&caller.Description, InputConfig{
			Message: "Default description:",
			Default: env.Description,
			Help:    "Used when a row has no description or citation text.",
		}},
	}

	for _, q := range questions {
		if *q.target != "" {
			continue
		}

		answer, err := p.Input(ctx, q.cfg)
		if err != nil {
			return assemble.Defaults{}, err
		}

		*q.target = answer
	}

	return caller, nil
}
