package risk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/riskgridgo/internal/config"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()

	// A link that was never assigned a risk costs exactly zero.
	assert.Equal(t, 0.0, s.Risk(0, 1))
	assert.Equal(t, 0.0, s.Risk(99, 100))
}

func TestStoreSetAndGet(t *testing.T) {
	s := NewStore()

	s.SetRisk(0, 1, 10)
	assert.Equal(t, 10.0, s.Risk(0, 1))

	// Direction matters.
	assert.Equal(t, 0.0, s.Risk(1, 0))

	// Overwrite.
	s.SetRisk(0, 1, 2.5)
	assert.Equal(t, 2.5, s.Risk(0, 1))
}

func TestStoreZero(t *testing.T) {
	s := NewStore()

	s.SetRisk(3, 4, 7)
	s.Zero(3, 4)
	assert.Equal(t, 0.0, s.Risk(3, 4))

	// Zeroing an unknown link is harmless.
	s.Zero(8, 9)
	assert.Equal(t, 0.0, s.Risk(8, 9))
}

func TestBuild(t *testing.T) {
	t.Run("populates store from model", func(t *testing.T) {
		model := &config.Model{
			Risks: []*config.Risk{
				{From: 0, To: 1, Value: 10},
				{From: 1, To: 2, Value: 5},
			},
		}
		s, err := Build(context.Background(), model)
		require.NoError(t, err)
		assert.Equal(t, 10.0, s.Risk(0, 1))
		assert.Equal(t, 5.0, s.Risk(1, 2))
	})

	t.Run("later entries overwrite earlier ones", func(t *testing.T) {
		model := &config.Model{
			Risks: []*config.Risk{
				{From: 0, To: 1, Value: 10},
				{From: 0, To: 1, Value: 3},
			},
		}
		s, err := Build(context.Background(), model)
		require.NoError(t, err)
		assert.Equal(t, 3.0, s.Risk(0, 1))
	})

	t.Run("negative risk is rejected", func(t *testing.T) {
		model := &config.Model{
			Risks: []*config.Risk{{From: 0, To: 1, Value: -1}},
		}
		_, err := Build(context.Background(), model)
		assert.ErrorContains(t, err, "negative risk")
	})
}
