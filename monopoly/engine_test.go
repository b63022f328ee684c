package monopoly

import (
	"math/rand"
	"testing"
	"time"

	"github.com/haziq21/monopoly-ai/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayWithRandomAgentsTerminates(t *testing.T) {
	e, err := New(2)
	require.NoError(t, err)

	agents := []Agent{&RandomAgent{Rand: rand.New(rand.NewSource(1))}, &RandomAgent{Rand: rand.New(rand.NewSource(2))}}
	loser, err := e.Play(agents)
	require.NoError(t, err)
	assert.True(t, loser == -1 || loser == 0 || loser == 1)
	assert.NotEmpty(t, e.MoveHistory())
}

func TestPlayRejectsMismatchedAgentCount(t *testing.T) {
	e, err := New(3)
	require.NoError(t, err)

	_, err = e.Play([]Agent{&RandomAgent{}})
	assert.Error(t, err)
}

func TestPlayRejectsMisseatedAIAgent(t *testing.T) {
	e, err := New(2)
	require.NoError(t, err)

	agents := []Agent{
		&RandomAgent{},
		&AIAgent{Seat: 0, TimeBudget: 5 * time.Millisecond},
	}
	_, err = e.Play(agents)
	assert.Error(t, err)
}

func TestPlayWithOneAIAgentTerminates(t *testing.T) {
	e, err := New(2)
	require.NoError(t, err)

	agents := []Agent{
		&AIAgent{Seat: 0, TimeBudget: 5 * time.Millisecond},
		&RandomAgent{Rand: rand.New(rand.NewSource(3))},
	}
	loser, err := e.Play(agents)
	require.NoError(t, err)
	assert.True(t, loser == -1 || loser == 0 || loser == 1)
}

func TestNewSeededWithSeededAgentsIsDeterministic(t *testing.T) {
	play := func() (int, []state.Handle) {
		e, err := NewSeeded(2, 42)
		require.NoError(t, err)
		agents := []Agent{
			&RandomAgent{Rand: rand.New(rand.NewSource(7))},
			&RandomAgent{Rand: rand.New(rand.NewSource(8))},
		}
		loser, err := e.Play(agents)
		require.NoError(t, err)
		return loser, e.MoveHistory()
	}

	loser1, history1 := play()
	loser2, history2 := play()

	assert.Equal(t, loser1, loser2)
	assert.Equal(t, history1, history2)
}
