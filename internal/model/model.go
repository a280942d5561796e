package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTheme = errors.New("model: invalid theme")

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// Opposite returns the other theme; toggling is an involution.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Task is a single to-do entry. The JSON field names are the persisted
// wire format under the "todos" storage key.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (t Task) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("model: task id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	return nil
}

// SocialLinks is the decorative footer payload returned by the credits
// endpoint. Names and Links pair by index.
type SocialLinks struct {
	Names []string `json:"names"`
	Links []string `json:"links"`
}

type SocialLink struct {
	Name string
	URL  string
}

func (s SocialLinks) IsEmpty() bool {
	return len(s.Names) == 0 && len(s.Links) == 0
}

// Pairs zips names with links, dropping any trailing entries that have no
// counterpart. The endpoint response is not validated upstream, so length
// mismatches are tolerated here.
func (s SocialLinks) Pairs() []SocialLink {
	n := len(s.Names)
	if len(s.Links) < n {
		n = len(s.Links)
	}
	out := make([]SocialLink, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SocialLink{Name: s.Names[i], URL: s.Links[i]})
	}
	return out
}
