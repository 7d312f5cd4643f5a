package numbers

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, Tier{Name: "easy", High: 10, Attempts: 6}, tiers[0])
	assert.Equal(t, Tier{Name: "medium", High: 50, Attempts: 8}, tiers[1])
	assert.Equal(t, Tier{Name: "hard", High: 100, Attempts: 10}, tiers[2])
}

func TestLoadTiers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	doc := `tiers:
  - name: casual
    high: 20
    attempts: 5
  - name: brutal
    high: 1000
    attempts: 9
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tiers, err := LoadTiers(path)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, Tier{Name: "casual", High: 20, Attempts: 5}, tiers[0])
	assert.Equal(t, Tier{Name: "brutal", High: 1000, Attempts: 9}, tiers[1])
}

func TestLoadTiersRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty", "tiers: []\n"},
		{"missing name", "tiers:\n  - high: 10\n    attempts: 3\n"},
		{"tiny range", "tiers:\n  - name: x\n    high: 1\n    attempts: 3\n"},
		{"no attempts", "tiers:\n  - name: x\n    high: 10\n"},
		{"not yaml", "{{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tiers.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.doc), 0o644))
			_, err := LoadTiers(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadTiersMissingFile(t *testing.T) {
	_, err := LoadTiers(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSessionHints(t *testing.T) {
	tier := Tier{Name: "test", High: 100, Attempts: 10}
	s := NewSession(tier, rand.New(rand.NewSource(7)))
	target := s.Target()
	require.GreaterOrEqual(t, target, 1)
	require.LessOrEqual(t, target, tier.High)

	if target > 1 {
		assert.Equal(t, TooLow, s.Guess(target-1))
	}
	if target < tier.High {
		assert.Equal(t, TooHigh, s.Guess(target+1))
	}
	assert.Equal(t, Correct, s.Guess(target))
	assert.True(t, s.Finished())
	assert.True(t, s.Won())
}

func TestSessionDeterministicUnderSeed(t *testing.T) {
	tier := DefaultTiers()[2]
	a := NewSession(tier, rand.New(rand.NewSource(99)))
	b := NewSession(tier, rand.New(rand.NewSource(99)))
	assert.Equal(t, a.Target(), b.Target())
}

func TestSessionRunsOutOfAttempts(t *testing.T) {
	tier := Tier{Name: "test", High: 10, Attempts: 3}
	s := NewSession(tier, rand.New(rand.NewSource(1)))

	// Always guess out of range on the low side so we never hit the target.
	assert.Equal(t, TooLow, s.Guess(0))
	assert.Equal(t, TooLow, s.Guess(0))
	assert.Equal(t, OutOfAttempts, s.Guess(0))
	assert.True(t, s.Finished())
	assert.False(t, s.Won())
	assert.Equal(t, 3, s.Attempts())

	// Terminal outcome is sticky and consumes nothing further.
	assert.Equal(t, OutOfAttempts, s.Guess(s.Target()))
	assert.Equal(t, 3, s.Attempts())
}

func TestSessionRemaining(t *testing.T) {
	tier := Tier{Name: "test", High: 10, Attempts: 5}
	s := NewSession(tier, rand.New(rand.NewSource(3)))
	assert.Equal(t, 5, s.Remaining())
	s.Guess(0)
	assert.Equal(t, 4, s.Remaining())
}
