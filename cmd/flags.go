package cmd

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/pflag"
)

// enumFlag is a string flag restricted to a fixed set of names.
type enumFlag struct {
	value   *string
	allowed []string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(p *string, allowed []string) *enumFlag {
	return &enumFlag{value: p, allowed: allowed}
}

func (f *enumFlag) String() string {
	if f.value == nil {
		return ""
	}
	return *f.value
}

func (f *enumFlag) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range f.allowed {
		if a == s {
			*f.value = s
			return nil
		}
	}
	if guess := closest(s, f.allowed); guess != "" {
		return fmt.Errorf("unknown value %q, did you mean %q?", s, guess)
	}
	return fmt.Errorf("unknown value %q (want one of %s)", s, strings.Join(f.allowed, ", "))
}

func (f *enumFlag) Type() string {
	return "string"
}

// closest returns the best fuzzy match for s among names, or "".
func closest(s string, names []string) string {
	if s == "" {
		return ""
	}
	matches := fuzzy.Find(s, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
