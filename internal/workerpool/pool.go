// Package workerpool runs Snappy chunk decompression across a fixed set
// of goroutines, tagging each submission with a uuid so that results
// collected out of completion order can be placed back into their
// original chunk slot.
package workerpool

import (
	"fmt"
	"sync"

	"github.com/golang/snappy"
	"github.com/google/uuid"
)

// ErrClosed is returned by DecodeSnappy once the pool has been closed.
var ErrClosed = fmt.Errorf("workerpool: pool is closed")

type job struct {
	id   uuid.UUID
	data []byte
}

type outcome struct {
	id   uuid.UUID
	data []byte
	err  error
}

// Pool is a long-lived set of goroutines, each running its own Snappy
// decoder, fed through a shared job channel. A Pool is safe to reuse
// across many frames but only one DecodeSnappy call should be in flight
// at a time; callers needing concurrent frame decodes should use one
// Pool per goroutine, or serialize calls with a mutex as Decoder does.
type Pool struct {
	jobs    chan job
	results chan outcome
	done    chan struct{}
	wg      sync.WaitGroup

	closeOnce sync.Once
}

// New starts a pool of n worker goroutines. An n below 1 is treated
// as 1.
func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs:    make(chan job),
		results: make(chan outcome),
		done:    make(chan struct{}),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			decoded, err := snappy.Decode(nil, j.data)
			select {
			case p.results <- outcome{id: j.id, data: decoded, err: err}:
			case <-p.done:
				return
			}
		case <-p.done:
			return
		}
	}
}

// DecodeSnappy decompresses each of chunks independently across the
// pool's workers and returns the decoded payloads in the same order as
// chunks, regardless of which order the workers finish in.
func (p *Pool) DecodeSnappy(chunks [][]byte) ([][]byte, error) {
	select {
	case <-p.done:
		return nil, ErrClosed
	default:
	}

	ids := make([]uuid.UUID, len(chunks))
	for i, c := range chunks {
		id := uuid.New()
		ids[i] = id
		go func(id uuid.UUID, data []byte) {
			select {
			case p.jobs <- job{id: id, data: data}:
			case <-p.done:
			}
		}(id, c)
	}

	// Every chunk submitted above sends exactly one outcome back on
	// p.results, whether it succeeds or not: all of them must be
	// received here before returning, even after the first error, or a
	// later DecodeSnappy call sharing this long-lived pool could receive
	// this call's leftover outcome in place of one of its own.
	byID := make(map[uuid.UUID][]byte, len(chunks))
	var firstErr error
	for i := 0; i < len(chunks); i++ {
		select {
		case res := <-p.results:
			if res.err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("workerpool: decoding chunk: %w", res.err)
				}
				continue
			}
			byID[res.id] = res.data
		case <-p.done:
			if firstErr == nil {
				firstErr = ErrClosed
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	out := make([][]byte, len(chunks))
	for i, id := range ids {
		out[i] = byID[id]
	}
	return out, nil
}

// Close stops all worker goroutines. It is safe to call more than once.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()
	})
	return nil
}
