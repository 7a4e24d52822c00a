package phase

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		Name   string
		Phases []Phase
		Err    error
	}{
		{
			Name: "empty list",
			Err:  errEmptyList,
		},
		{
			Name:   "zero duration",
			Phases: []Phase{{Label: "Work", Duration: 0}},
			Err:    ErrInvalidDuration,
		},
		{
			Name:   "negative duration",
			Phases: []Phase{{Label: "Work", Duration: -time.Minute}},
			Err:    ErrInvalidDuration,
		},
		{
			Name:   "sub-second duration",
			Phases: []Phase{{Label: "Work", Duration: 900 * time.Millisecond}},
			Err:    ErrInvalidDuration,
		},
		{
			Name:   "blank label",
			Phases: []Phase{{Label: "  ", Duration: time.Minute}},
			Err:    errEmptyLabel,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := NewList(tc.Phases...)
			assert.ErrorIs(t, err, tc.Err)
		})
	}
}

func TestNewListTruncatesToWholeSeconds(t *testing.T) {
	l, err := NewList(Phase{Label: "Work", Duration: 90*time.Second + 400*time.Millisecond})
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, l.At(0).Duration)
	assert.Equal(t, 90, l.At(0).Seconds())
}

func TestWithDurationIsCopyOnWrite(t *testing.T) {
	original := Defaults()
	before := original.All()

	edited, err := original.WithDuration(1, 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, edited.At(1).Duration)

	if diff := cmp.Diff(before, original.All()); diff != "" {
		t.Fatalf("original list was mutated (-want +got):\n%s", diff)
	}

	again := Defaults()
	assert.Equal(t, 13*time.Minute, again.At(1).Duration)
}

func TestWithDurationErrors(t *testing.T) {
	l := Defaults()

	_, err := l.WithDuration(4, time.Minute)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.WithDuration(-1, time.Minute)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.WithDuration(0, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestAllReturnsCopy(t *testing.T) {
	l := Defaults()

	phases := l.All()
	phases[0].Label = "Changed"

	assert.Equal(t, "Plan", l.At(0).Label)
}

func TestIndexAndTotal(t *testing.T) {
	l := Defaults()

	assert.Equal(t, 1, l.Index("work"))
	assert.Equal(t, -1, l.Index("lunch"))
	assert.Equal(t, 20*time.Minute, l.Total())
	assert.Equal(t, 3, l.Last())
}

func TestKind(t *testing.T) {
	assert.True(t, Working.Valid())
	assert.False(t, Kind("sleeping").Valid())
	assert.Equal(t, "What will you work on?", Preparation.Placeholder())
	assert.Equal(t, "How did it go?", Review.Placeholder())
	assert.Equal(t, "Add a comment", Relaxing.Placeholder())
}
