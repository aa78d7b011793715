// Package closer завершает ресурсы приложения при остановке.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// CloseFunc закрывает один ресурс приложения.
type CloseFunc func(ctx context.Context) error

type resource struct {
	name  string
	close CloseFunc
}

// Closer закрывает ресурсы в порядке, обратном регистрации:
// кто открылся последним, тот закрывается первым.
type Closer struct {
	mu        sync.Mutex
	resources []resource
	once      sync.Once
	forceWait time.Duration
}

// New создаёт Closer. forceWait ограничивает принудительное закрытие
// ресурсов, не успевших завершиться до отмены контекста; ноль означает
// значение по умолчанию в 2 секунды.
func New(forceWait time.Duration) *Closer {
	if forceWait == 0 {
		forceWait = 2 * time.Second
	}

	return &Closer{forceWait: forceWait}
}

// Add регистрирует ресурс. Имя попадает в текст ошибки закрытия.
func (c *Closer) Add(name string, fn CloseFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, close: fn})
}

// Close закрывает все ресурсы. Повторные вызовы ничего не делают.
// Если ctx отменяется до завершения, оставшиеся ресурсы закрываются
// параллельно в пределах forceWait.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		resources := c.resources
		c.mu.Unlock()

		var errs []error
		for i := len(resources) - 1; i >= 0; i-- {
			res := resources[i]
			done := make(chan error, 1)
			go func() {
				done <- res.close(ctx)
			}()

			select {
			case closeErr := <-done:
				if closeErr != nil {
					errs = append(errs, fmt.Errorf("%s: %w", res.name, closeErr))
				}
			case <-ctx.Done():
				errs = append(errs, fmt.Errorf("shutdown deadline reached, closing %d resource(s) forcibly", i+1))
				errs = append(errs, c.forceClose(resources[:i+1])...)
				err = errors.Join(errs...)
				return
			}
		}

		err = errors.Join(errs...)
	})

	return err
}

// forceClose параллельно закрывает оставшиеся ресурсы с собственным таймаутом.
func (c *Closer) forceClose(resources []resource) []error {
	ctx, cancel := context.WithTimeout(context.Background(), c.forceWait)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, res := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if closeErr := res.close(ctx); closeErr != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s (forced): %w", res.name, closeErr))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
