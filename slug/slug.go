// Package slug derives URL-safe identifiers for hosted invitations.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Clean lowercases s, turns every character outside [a-z0-9] into a hyphen,
// collapses hyphen runs and trims hyphens from both ends.
func Clean(s string) string {
	out := nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	out = hyphenRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// Suffix is the last six digits of t in Unix milliseconds, zero padded
func Suffix(t time.Time) string {
	return fmt.Sprintf("%06d", t.UnixMilli()%1_000_000)
}

// Build assembles {host}-{event}-{suffix}. Parts that clean to nothing become
// "host" and "event".
func Build(eventName, hostName string, t time.Time) string {
	event := Clean(eventName)
	if event == "" {
		event = "event"
	}
	host := Clean(hostName)
	if host == "" {
		host = "host"
	}
	return host + "-" + event + "-" + Suffix(t)
}

// Slugify builds a slug using the current time
func Slugify(eventName, hostName string) string {
	return NewGenerator().Generate(eventName, hostName)
}

// Generator builds slugs against an injectable clock
type Generator struct {
	Now func() time.Time
}

// NewGenerator returns a generator on the wall clock
func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

// Generate builds a slug at the generator's current time
func (g *Generator) Generate(eventName, hostName string) string {
	return g.GenerateAt(eventName, hostName, g.now())
}

// GenerateAt builds a slug at t
func (g *Generator) GenerateAt(eventName, hostName string, t time.Time) string {
	return Build(eventName, hostName, t)
}

// Time returns the generator's current time
func (g *Generator) Time() time.Time {
	return g.now()
}

func (g *Generator) now() time.Time {
	if g == nil || g.Now == nil {
		return time.Now()
	}
	return g.Now()
}
