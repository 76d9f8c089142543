package slug

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+-[a-z0-9-]+-\d{6}$`)

func TestSlugify_Shape(t *testing.T) {
	s := Slugify("Sarah & John's Wedding", "Sarah & John")

	assert.Regexp(t, slugPattern, s)
	assert.NotContains(t, s, "--")
	assert.False(t, strings.HasPrefix(s, "-"))
	assert.False(t, strings.HasSuffix(s, "-"))
	assert.True(t, strings.HasPrefix(s, "sarah-john-sarah-john-s-wedding-"))
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sarah & John", "sarah-john"},
		{"  --Hello,,World--  ", "hello-world"},
		{"Café Noël", "caf-no-l"},
		{"", ""},
		{"!!!", ""},
		{"ABC123", "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestBuild_BlankNamesUsePlaceholders(t *testing.T) {
	at := time.UnixMilli(1_700_000_123_456)

	assert.Equal(t, "host-event-123456", Build("", "", at))
	assert.Equal(t, "host-party-123456", Build("Party", "   ", at))
	assert.Equal(t, "ann-event-123456", Build("***", "Ann", at))
}

func TestSuffix_ZeroPadded(t *testing.T) {
	assert.Equal(t, "000042", Suffix(time.UnixMilli(5_000_000_042)))
	assert.Equal(t, "999999", Suffix(time.UnixMilli(1_999_999)))
}

func TestGenerator_UsesClock(t *testing.T) {
	at := time.UnixMilli(1_718_000_000_001)
	g := &Generator{Now: func() time.Time { return at }}

	assert.Equal(t, "ann-gala-000001", g.Generate("Gala", "Ann"))
	assert.Equal(t, "ann-gala-000002", g.GenerateAt("Gala", "Ann", at.Add(time.Millisecond)))
	assert.Equal(t, at, g.Time())

	var unset *Generator
	assert.False(t, unset.Time().IsZero())
}
