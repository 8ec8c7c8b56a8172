package ui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func TestWrapShortStringIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"  leading spaces are kept when short",
		strings.Repeat("x", Width),
		"tabs\tand\nnewlines stay",
	}
	for _, in := range inputs {
		require.Equal(t, in, Wrap(in))
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "hard break at width",
			in:   strings.Repeat("a", 60),
			want: strings.Repeat("a", 50) + "\n\t" + strings.Repeat("a", 10),
		},
		{
			name: "space after buffer becomes break",
			in:   strings.Repeat("x", 44) + " " + strings.Repeat("y", 10),
			want: strings.Repeat("x", 44) + "\n\t" + strings.Repeat("y", 10),
		},
		{
			name: "space before buffer is kept",
			in:   strings.Repeat("x", 40) + " " + strings.Repeat("y", 20),
			want: strings.Repeat("x", 40) + " " + strings.Repeat("y", 9) + "\n\t" + strings.Repeat("y", 11),
		},
		{
			name: "newline resets and drops leading spaces",
			in:   strings.Repeat("a", 50) + "\n  b",
			want: strings.Repeat("a", 50) + "\nb",
		},
		{
			name: "tabs do not count",
			in:   "\t\t" + strings.Repeat("a", 50),
			want: "\t\t" + strings.Repeat("a", 50),
		},
		{
			name: "wide runes under the rune limit still wrap",
			in:   strings.Repeat("日", 30),
			want: strings.Repeat("日", 25) + "\n\t" + strings.Repeat("日", 5),
		},
		{
			name: "wide runes count two columns",
			in:   strings.Repeat("日", 60),
			want: strings.Repeat("日", 25) + "\n\t" + strings.Repeat("日", 25) + "\n\t" + strings.Repeat("日", 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Wrap(tt.in))
		})
	}
}

func TestWrapKeepsTextAndWidth(t *testing.T) {
	words := []string{"a", "buy", "groceries", "tomorrow", "supercalifragilisticexpialidocious",
		"日本語", "\n", "\t", "meeting", strings.Repeat("z", 70)}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		var parts []string
		n := 5 + rng.Intn(30)
		for j := 0; j < n; j++ {
			parts = append(parts, words[rng.Intn(len(words))])
		}
		in := strings.Join(parts, " ")
		out := Wrap(in)

		require.Equal(t, stripBlank(in), stripBlank(out), "input %q", in)
		if runewidth.StringWidth(in) <= Width {
			require.Equal(t, in, out)
		}
		for _, line := range strings.Split(out, "\n") {
			line = strings.ReplaceAll(line, "\t", "")
			require.LessOrEqual(t, runewidth.StringWidth(line), Width, "line %q", line)
		}
	}
}

func stripBlank(s string) string {
	return strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(s)
}

func TestBorder(t *testing.T) {
	require.Equal(t, strings.Repeat("=", Width), Border("", Width, '='))
	require.Equal(t, "====Error Encountered"+strings.Repeat("=", Width-21), Border("Error Encountered", 4, '='))
	require.Equal(t, "-----King says"+strings.Repeat("-", Width-14), Border("King says", 5, '-'))

	long := strings.Repeat("L", Width+5)
	require.Equal(t, "--"+long, Border(long, 2, '-'))
}

func TestWrapIndentAlignsContinuation(t *testing.T) {
	indent := "     "
	in := strings.Repeat("b", 60)
	out := wrap(in, indent)
	require.Equal(t, strings.Repeat("b", 45)+"\n\t"+indent+strings.Repeat("b", 15), out)

	require.Equal(t, "short", wrap("short", indent))
	require.Equal(t, strings.Repeat("c", 45), wrap(strings.Repeat("c", 45), indent))
}
