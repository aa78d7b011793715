// Package jitter размывает интервалы повторов, чтобы параллельные
// ретраи не выстраивались в синхронные волны.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	globalMu   sync.Mutex
)

// Backoff — экспоненциальная задержка повторов со случайной добавкой.
// Jitter задаёт долю добавки: 0.5 означает до +50% к вычисленной задержке.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Jitter float64
}

// Delay возвращает задержку перед повтором attempt (нумерация с нуля).
func (b Backoff) Delay(attempt int) time.Duration {
	globalMu.Lock()
	defer globalMu.Unlock()
	return b.DelayWith(globalRand, attempt)
}

// DelayWith считает задержку на заданном генераторе.
// Детерминированный генератор удобен в тестах.
func (b Backoff) DelayWith(rng *rand.Rand, attempt int) time.Duration {
	delay := b.Base
	for i := 0; i < attempt && delay < b.Max; i++ {
		delay *= 2
	}
	if delay > b.Max {
		delay = b.Max
	}

	return delay + time.Duration(rng.Float64()*b.Jitter*float64(delay))
}
