package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setVocab allows everything in its set.
type setVocab map[string]struct{}

func (v setVocab) IsAllowed(w string) bool {
	_, ok := v[w]
	return ok
}

func vocabOf(words ...string) setVocab {
	v := setVocab{}
	for _, w := range words {
		v[w] = struct{}{}
	}
	return v
}

func TestNewRoundForcedSolution(t *testing.T) {
	r, err := NewRound(RoundConfig{Solution: "  CRANE "})
	require.NoError(t, err)
	assert.Equal(t, "crane", r.Solution, "solution is trimmed and lowercased")
	assert.Equal(t, 6, r.MaxTries)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, StatePlaying, r.State())
}

func TestNewRoundSeededPickIsDeterministic(t *testing.T) {
	answers := []string{"apple", "crane", "stone", "light"}

	first, err := NewRound(RoundConfig{Answers: answers, Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	second, err := NewRound(RoundConfig{Answers: answers, Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)

	assert.Equal(t, first.Solution, second.Solution)
	assert.Contains(t, answers, first.Solution)
}

func TestNewRoundEmptyAnswerPool(t *testing.T) {
	_, err := NewRound(RoundConfig{})
	assert.Error(t, err)
}

func TestRoundWin(t *testing.T) {
	r, err := NewRound(RoundConfig{
		Solution: "crane",
		Vocab:    vocabOf("crane", "crate", "doubt"),
	})
	require.NoError(t, err)

	marks, state, err := r.Apply("crate")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, []Mark{MarkExact, MarkExact, MarkExact, MarkAbsent, MarkExact}, marks)

	marks, state, err = r.Apply("CRANE")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.True(t, AllExact(marks))

	// No guesses after the round is over.
	_, state, err = r.Apply("doubt")
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, StateWon, state)
}

func TestRoundLossAfterMaxTries(t *testing.T) {
	r, err := NewRound(RoundConfig{
		Solution: "crane",
		Vocab:    vocabOf("doubt"),
		MaxTries: 3,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, state, err := r.Apply("doubt")
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, state)
	}
	_, state, err := r.Apply("doubt")
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.True(t, r.Finished)
	assert.False(t, r.Won)
}

func TestRoundRejectsInvalidGuesses(t *testing.T) {
	r, err := NewRound(RoundConfig{
		Solution: "crane",
		Vocab:    vocabOf("crane", "crate"),
	})
	require.NoError(t, err)

	cases := []struct {
		name  string
		guess string
		want  error
	}{
		{"too short", "cat", ErrInvalidGuess},
		{"too long", "cranes", ErrInvalidGuess},
		{"non alphabetic", "cr4ne", ErrInvalidGuess},
		{"not in vocabulary", "zzzzz", ErrNotInVocabulary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, state, err := r.Apply(tc.guess)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, StatePlaying, state)
			assert.Empty(t, r.Guesses, "rejected guesses consume no tries")
		})
	}
}

func TestRoundWithoutVocabularySkipsMembership(t *testing.T) {
	r, err := NewRound(RoundConfig{Solution: "crane"})
	require.NoError(t, err)

	_, _, err = r.Apply("zzzzz")
	assert.NoError(t, err, "nil vocabulary means length/alpha checks only")
}

func TestSelfTest(t *testing.T) {
	assert.NoError(t, SelfTest())
}
