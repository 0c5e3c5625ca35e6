package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypedMappings(t *testing.T) {
	s, err := Load([]string{"a=5", "b=true", "c=3.5", "a=7"}, "=", "")
	require.NoError(t, err)

	a, err := s.Int("a")
	require.NoError(t, err)
	assert.Equal(t, 7, a)

	b, err := s.Bool("b")
	require.NoError(t, err)
	assert.True(t, b)

	c, err := s.Float("c")
	require.NoError(t, err)
	assert.Equal(t, 3.5, c)

	_, err = s.Int("c")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Bool("c")
	assert.ErrorIs(t, err, ErrNotFound)

	raw, err := s.String("c")
	require.NoError(t, err)
	assert.Equal(t, "3.5", raw)
}

func TestIntAlsoRecordsFloat(t *testing.T) {
	s, err := Load([]string{"n=42"}, "=", "")
	require.NoError(t, err)

	f, err := s.Float("n")
	require.NoError(t, err)
	assert.Equal(t, 42.0, f)

	_, err = s.Bool("n")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoolIgnoresCase(t *testing.T) {
	s, err := Load([]string{"x=TRUE", "y=False", "z=yes"}, "=", "")
	require.NoError(t, err)

	x, err := s.Bool("x")
	require.NoError(t, err)
	assert.True(t, x)

	y, err := s.Bool("y")
	require.NoError(t, err)
	assert.False(t, y)

	_, err = s.Bool("z")
	assert.ErrorIs(t, err, ErrNotFound)
	z, err := s.String("z")
	require.NoError(t, err)
	assert.Equal(t, "yes", z)
}

func TestSkipPatternDropsWholeLine(t *testing.T) {
	s, err := Load([]string{"#comment=1", "real=2"}, "=", "#.*")
	require.NoError(t, err)

	_, err = s.String("comment")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.String("#comment")
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := s.Int("real")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSkipPatternWithExplicitAnchor(t *testing.T) {
	s, err := Load([]string{"#comment=1", "a=#1"}, "=", "^#.*")
	require.NoError(t, err)

	_, err = s.String("#comment")
	assert.ErrorIs(t, err, ErrNotFound)

	// '#' after the key does not match an anchored comment pattern.
	v, err := s.String("a")
	require.NoError(t, err)
	assert.Equal(t, "#1", v)
}

func TestSkipPatternMustMatchEntireEntry(t *testing.T) {
	// "a" occurs in the entry but does not match it in full.
	s, err := Load([]string{"a=1"}, "=", "a")
	require.NoError(t, err)

	v, err := s.Int("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSplitsOnFirstSeparatorOnly(t *testing.T) {
	s, err := Load([]string{"expr=a=b"}, "=", "")
	require.NoError(t, err)

	v, err := s.String("expr")
	require.NoError(t, err)
	assert.Equal(t, "a=b", v)
}

func TestSeparatorIsPattern(t *testing.T) {
	s, err := Load([]string{"width : 12"}, `\s*:\s*`, "")
	require.NoError(t, err)

	v, err := s.Int("width")
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestMalformedEntries(t *testing.T) {
	for _, entry := range []string{"novalue", "key=", "=value", ""} {
		t.Run(entry, func(t *testing.T) {
			s := NewStore()
			err := s.ParseEntry(entry, "=")
			assert.ErrorIs(t, err, ErrMalformedEntry)
		})
	}
}

func TestParseStopsAtFirstMalformedEntry(t *testing.T) {
	s := NewStore()
	err := s.Parse([]string{"a=1", "broken", "b=2"}, "=")
	require.ErrorIs(t, err, ErrMalformedEntry)

	_, err = s.Int("a")
	assert.NoError(t, err)
	_, err = s.Int("b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFailedNumericParseKeepsEarlierMapping(t *testing.T) {
	s, err := Load([]string{"size=10", "size=large"}, "=", "")
	require.NoError(t, err)

	v, err := s.Int("size")
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	raw, err := s.String("size")
	require.NoError(t, err)
	assert.Equal(t, "large", raw)
}

func TestParseReaderSkipsCommentsAndBlanks(t *testing.T) {
	input := strings.Join([]string{
		"# weave settings",
		"xSize=12",
		"",
		"   ",
		"  # indented comment",
		"xInterval=3",
	}, "\n")

	s := NewStore()
	require.NoError(t, s.SetSkipPattern(`\s*(#.*)?`))
	require.NoError(t, s.ParseReader(strings.NewReader(input), "="))

	assert.Equal(t, []string{"xInterval", "xSize"}, s.Keys())
}

func TestParseReaderReportsLine(t *testing.T) {
	s := NewStore()
	err := s.ParseReader(strings.NewReader("a=1\nbad\n"), "=")
	require.ErrorIs(t, err, ErrMalformedEntry)
	assert.Contains(t, err.Error(), "line 2")
}

func TestInvalidPatterns(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.SetSkipPattern("("))
	assert.Error(t, s.Parse([]string{"a=1"}, "["))
	assert.NotErrorIs(t, s.Parse([]string{"a=1"}, "["), ErrMalformedEntry)
}

func TestClearSkipPattern(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetSkipPattern("#.*"))
	require.NoError(t, s.SetSkipPattern(""))
	require.NoError(t, s.ParseEntry("#k=v", "="))

	v, err := s.String("#k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestClearSkipPatternParsesEverything(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetSkipPattern(`\s*(#.*)?`))
	require.NoError(t, s.ParseEntry("#skipped=1", "="))
	s.ClearSkipPattern()
	require.NoError(t, s.ParseEntry("#kept=2", "="))

	_, err := s.String("#skipped")
	assert.ErrorIs(t, err, ErrNotFound)
	v, err := s.Int("#kept")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
