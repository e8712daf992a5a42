package loader

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// scenarioStep is one YAML entry of a scenario file. The step type selects
// which loader the entry maps to; unused keys are simply ignored by that
// loader.
type scenarioStep struct {
	Type      string `yaml:"type"`
	URL       string `yaml:"url"`
	WaitUntil string `yaml:"wait_until"`
	Timeout   string `yaml:"timeout"`

	User             string `yaml:"user"`
	Password         string `yaml:"password"`
	UserSelector     string `yaml:"user_selector"`
	PasswordSelector string `yaml:"password_selector"`
	SubmitSelector   string `yaml:"submit_selector"`
	LoggedInSelector string `yaml:"logged_in_selector"`
}

// ParseScenario decodes a YAML scenario document into a Sequence.
//
// A scenario is a list of steps:
//
//	- type: login
//	  url: https://app.example.com/login
//	  user: qa
//	  password: secret
//	  logged_in_selector: "#logout"
//	- type: page
//	  url: https://app.example.com/dashboard
//	  wait_until: networkidle
//	  timeout: 10s
func ParseScenario(data []byte) (Sequence, error) {
	var steps []scenarioStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}

	seq := make(Sequence, 0, len(steps))
	for i, step := range steps {
		l, err := step.loader()
		if err != nil {
			return nil, fmt.Errorf("scenario step %d: %w", i, err)
		}
		seq = append(seq, l)
	}
	return seq, nil
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return ParseScenario(data)
}

func (s scenarioStep) loader() (Loader, error) {
	if s.URL == "" {
		return nil, ErrMissingURL
	}
	timeout, err := s.timeout()
	if err != nil {
		return nil, err
	}

	switch s.Type {
	case "page", "":
		return Page{
			URL:       s.URL,
			WaitUntil: s.WaitUntil,
			Timeout:   timeout,
		}, nil
	case "login":
		return Login{
			URL:              s.URL,
			User:             s.User,
			Password:         s.Password,
			WaitUntil:        s.WaitUntil,
			Timeout:          timeout,
			UserSelector:     s.UserSelector,
			PasswordSelector: s.PasswordSelector,
			SubmitSelector:   s.SubmitSelector,
			LoggedInSelector: s.LoggedInSelector,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStep, s.Type)
}

func (s scenarioStep) timeout() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s.Timeout, err)
	}
	return d, nil
}
