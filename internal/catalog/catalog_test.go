package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/listboard/internal/board"
)

func seq() board.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func TestFromLabelsDefaults(t *testing.T) {
	cat, err := FromLabels(nil, seq())
	require.NoError(t, err)
	require.Equal(t, len(DefaultLabels), cat.Len())
	for i, label := range DefaultLabels {
		tmpl, ok := cat.At(i)
		require.True(t, ok)
		require.Equal(t, label, tmpl.Content)
		require.Equal(t, fmt.Sprintf("t%d", i+1), tmpl.ID)
	}
}

func TestFromLabelsRejectsBadInput(t *testing.T) {
	_, err := FromLabels([]string{"Headline", "  "}, seq())
	require.ErrorIs(t, err, ErrEmptyLabel)

	_, err = FromLabels([]string{"Quote", "quote"}, seq())
	require.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestFromLabelsTrims(t *testing.T) {
	cat, err := FromLabels([]string{" Banner "}, seq())
	require.NoError(t, err)
	tmpl, _ := cat.At(0)
	require.Equal(t, "Banner", tmpl.Content)
}

func TestLookup(t *testing.T) {
	cat, err := FromLabels(nil, seq())
	require.NoError(t, err)

	cases := []struct {
		label string
		want  int
	}{
		{"Headline", 0},
		{"image", 2},
		{"  QUOTE ", 4},
		{"Slidshow", 3},
		{"Cpy", 1},
	}
	for _, tc := range cases {
		got, err := Lookup(cat, tc.label)
		require.NoError(t, err, tc.label)
		require.Equal(t, tc.want, got, tc.label)
	}

	_, err = Lookup(cat, "Video")
	require.ErrorIs(t, err, ErrUnknownTemplate)

	_, err = Lookup(board.Catalog{}, "Headline")
	require.ErrorIs(t, err, ErrUnknownTemplate)
}
