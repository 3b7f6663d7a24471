package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWrap_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "Exits: north\n\n", Wrap("Exits: north\n\n", 70))
}

func TestWrap_BreaksAtEarlyNewline(t *testing.T) {
	text := strings.Repeat("a", 40) + "\n" + strings.Repeat("b ", 49) + "b"
	require.Len(t, text, 140)

	out := Wrap(text, 70)
	lines := strings.Split(out, "\n")
	assert.Equal(t, strings.Repeat("a", 40), lines[0])
}

func TestWrap_NoSpacesEmittedUnbroken(t *testing.T) {
	text := strings.Repeat("z", 75)
	assert.Equal(t, text, Wrap(text, 70))
}

func TestWrap_SpaceAtWrapColumnIsConsumed(t *testing.T) {
	text := strings.Repeat("x", 70) + " " + strings.Repeat("y", 10)
	assert.Equal(t, strings.Repeat("x", 70)+"\n"+strings.Repeat("y", 10), Wrap(text, 70))
}

func TestWrap_BreaksAtLastSpaceInWindow(t *testing.T) {
	text := strings.Repeat("a", 60) + " " + strings.Repeat("b", 20)
	assert.Equal(t, strings.Repeat("a", 60)+"\n"+strings.Repeat("b", 20), Wrap(text, 70))
}

func TestWrap_LongWordBreaksAtFirstSpaceBeyondWindow(t *testing.T) {
	text := strings.Repeat("x", 80) + " tail"
	assert.Equal(t, strings.Repeat("x", 80)+"\ntail", Wrap(text, 70))
}

func TestWrap_ExactWidthWithoutNewline(t *testing.T) {
	text := strings.Repeat("a", 30) + " " + strings.Repeat("b", 39)
	require.Len(t, text, 70)
	assert.Equal(t, strings.Repeat("a", 30)+"\n"+strings.Repeat("b", 39), Wrap(text, 70))
}

func TestWrap_ParagraphsKeepBlankLines(t *testing.T) {
	text := "YOUR BEDROOM\nYour bedroom is simple yet functional.\n\nYou see cubby_hole, rock, keys here.\n\nExits: north\n\n"
	assert.Equal(t, text, Wrap(text, 70))
}

func TestWrap_NonPositiveWidth(t *testing.T) {
	assert.Equal(t, "anything at all", Wrap("anything at all", 0))
}

func TestPropertyWrapKeepsWordsAndWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,10}`), 1, 60).Draw(t, "words")
		width := rapid.IntRange(12, 80).Draw(t, "width")
		text := strings.Join(words, " ")

		out := Wrap(text, width)
		lines := strings.Split(out, "\n")
		for _, l := range lines {
			if len(l) > width {
				t.Fatalf("line %q longer than %d", l, width)
			}
		}
		if strings.Join(lines, " ") != text {
			t.Fatalf("rejoined %q != %q", strings.Join(lines, " "), text)
		}
	})
}

func TestReflow_RespectsWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum ", 20)
	for _, l := range strings.Split(Reflow(text, 30), "\n") {
		assert.LessOrEqual(t, len(strings.TrimRight(l, " ")), 30)
	}
}

func TestWrapperFor(t *testing.T) {
	f, err := WrapperFor(WrapClassic)
	require.NoError(t, err)
	assert.Equal(t, "a b", f("a b", 70))

	f, err = WrapperFor(WrapReflow)
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = WrapperFor("justify")
	assert.Error(t, err)
}
