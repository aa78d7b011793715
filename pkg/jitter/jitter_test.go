package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelayWithinBounds(t *testing.T) {
	b := Backoff{Base: time.Second, Max: time.Minute, Jitter: 0.5}

	for i := 0; i < 100; i++ {
		d := b.Delay(0)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, time.Second+time.Second/2)
	}
}

func TestDelayWithDeterministic(t *testing.T) {
	b := Backoff{Base: time.Second, Max: time.Minute, Jitter: 0.5}

	d1 := b.DelayWith(rand.New(rand.NewSource(42)), 2)
	d2 := b.DelayWith(rand.New(rand.NewSource(42)), 2)

	assert.Equal(t, d1, d2)
}

func TestDelayGrowth(t *testing.T) {
	b := Backoff{Base: 100 * time.Millisecond, Max: 10 * time.Second}

	prev := time.Duration(0)
	for attempt := 0; attempt < 5; attempt++ {
		d := b.Delay(attempt)
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestDelayCapped(t *testing.T) {
	b := Backoff{Base: time.Second, Max: 3 * time.Second}

	assert.Equal(t, b.Max, b.Delay(10))
}
