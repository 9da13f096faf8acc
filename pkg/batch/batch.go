// Package batch runs bounded groups of concurrent calls.
package batch

import (
	"context"
	"sync"
	"time"
)

// Options configures Collect.
//
//   - Size: maximum number of concurrent calls per batch (values < 1 mean 1)
//   - Delay: pause taken inside each call before fn runs (0 disables)
type Options struct {
	Size  int
	Delay time.Duration
}

// All runs every fn concurrently and waits for them. The first error
// cancels the shared context and is returned.
func All(ctx context.Context, fns ...func(context.Context) error) error {
	if len(fns) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)

	wg := sync.WaitGroup{}
	for _, fn := range fns {
		wg.Add(1)
		go func(fn func(context.Context) error) {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				select {
				case errCh <- err:
					cancel() // stop others
				default:
				}
			}
		}(fn)
	}

	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// Collect calls fn once per input, in sequential batches of at most
// opts.Size concurrent calls; each batch is fully joined before the next
// starts. Results keep input order. Inputs whose call fails are dropped
// and reported through onErr when it is not nil.
func Collect[T, R any](ctx context.Context, inputs []T, opts Options, fn func(context.Context, T) (R, error), onErr func(T, error)) []R {
	if len(inputs) == 0 {
		return nil
	}

	size := opts.Size
	if size < 1 {
		size = 1
	}

	out := make([]R, 0, len(inputs))

	for start := 0; start < len(inputs); start += size {
		end := min(start+size, len(inputs))
		chunk := inputs[start:end]

		results := make([]R, len(chunk))
		errs := make([]error, len(chunk))

		wg := sync.WaitGroup{}
		for i, item := range chunk {
			wg.Add(1)
			go func(i int, item T) {
				defer wg.Done()
				if err := pause(ctx, opts.Delay); err != nil {
					errs[i] = err
					return
				}
				results[i], errs[i] = fn(ctx, item)
			}(i, item)
		}
		wg.Wait()

		for i := range chunk {
			if errs[i] != nil {
				if onErr != nil {
					onErr(chunk[i], errs[i])
				}
				continue
			}
			out = append(out, results[i])
		}
	}

	return out
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
