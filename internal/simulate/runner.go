package simulate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrRunInFlight = errors.New("simulate: a run is already in flight for this session")

// Run is one completed simulation, stamped with a token so callers can
// correlate responses with requests.
type Run struct {
	Token      string    `json:"token"`
	Result     Result    `json:"result"`
	FinishedAt time.Time `json:"finished_at"`
}

// Runner serializes simulations per caller. The evaluation itself is
// synchronous; the configured delay stands in for the round trip a real
// compliance engine would cost, so the caller contract (context,
// single-flight, run tokens) survives a future backend swap unchanged.
type Runner struct {
	delay time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewRunner(delay time.Duration) *Runner {
	return &Runner{
		delay:    delay,
		inFlight: make(map[string]struct{}),
	}
}

// Run evaluates the scenario for the given caller key (session token).
// At most one run per key may be in flight; concurrent attempts get
// ErrRunInFlight. A started run always produces a result unless the
// context expires first.
func (r *Runner) Run(ctx context.Context, key string, in Input) (Run, error) {
	r.mu.Lock()
	if _, busy := r.inFlight[key]; busy {
		r.mu.Unlock()
		return Run{}, ErrRunInFlight
	}
	r.inFlight[key] = struct{}{}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.inFlight, key)
		r.mu.Unlock()
	}()

	if r.delay > 0 {
		t := time.NewTimer(r.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return Run{}, ctx.Err()
		}
	}

	return Run{
		Token:      uuid.NewString(),
		Result:     Evaluate(in),
		FinishedAt: time.Now().UTC(),
	}, nil
}
