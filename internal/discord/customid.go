package discord

import (
	"strings"

	"github.com/KirkDiggler/metamagic/internal/errors"
)

const (
	CustomIDSeparator = ":"
	// MaxCustomIDLength is Discord's limit on component custom IDs
	MaxCustomIDLength = 100
)

// CustomID is a parsed component custom ID: domain:action[:target[:args...]]
type CustomID struct {
	// Domain is the top-level category, "metamagic" for everything here
	Domain string

	// Action is what the component does, e.g. "exclude" or "cancel"
	Action string

	// Target is the prompt the component belongs to
	Target string

	Args []string
}

func NewCustomID(domain, action string) *CustomID {
	return &CustomID{Domain: domain, Action: action}
}

func (c *CustomID) WithTarget(target string) *CustomID {
	c.Target = target
	return c
}

func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Encode joins the parts. Parts may not contain the separator.
func (c *CustomID) Encode() (string, error) {
	if c.Domain == "" || c.Action == "" {
		return "", errors.InvalidArgument("custom ID needs a domain and an action")
	}

	parts := []string{c.Domain, c.Action}
	if c.Target != "" {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	for _, p := range parts {
		if strings.Contains(p, CustomIDSeparator) {
			return "", errors.InvalidArgumentf("custom ID part %q contains %q", p, CustomIDSeparator)
		}
	}

	result := strings.Join(parts, CustomIDSeparator)
	if len(result) > MaxCustomIDLength {
		return "", errors.InvalidArgumentf("custom ID exceeds maximum length of %d characters", MaxCustomIDLength)
	}
	return result, nil
}

// MustEncode is for IDs built from constants
func (c *CustomID) MustEncode() string {
	result, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return result
}

// ParseCustomID splits an ID produced by Encode
func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, errors.InvalidArgument("empty custom ID")
	}

	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, errors.InvalidArgumentf("invalid custom ID %q: expected at least domain:action", customID)
	}

	result := NewCustomID(parts[0], parts[1])
	if len(parts) > 2 {
		result.Target = parts[2]
		result.Args = append(result.Args, parts[3:]...)
	}
	return result, nil
}
