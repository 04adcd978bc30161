// Package search implements the best-first graph search over
// normalized game states: a priority-queue frontier, a visited set
// keyed by canonical board content, and parent-chain reconstruction.
package search

import (
	"container/heap"
	"context"
	"errors"

	"github.com/FA555/SISSU/internal/checkpoint"
	"github.com/FA555/SISSU/internal/game"
)

// ErrNoSolution is returned when the frontier is exhausted without
// reaching a terminal state.
var ErrNoSolution = errors.New("search: no solution found")

// ErrIterationLimit is returned when Options.MaxIterations is reached
// before a solution or an exhausted frontier.
var ErrIterationLimit = errors.New("search: iteration limit reached")

// Options configures a single Solve call. The zero value is a
// reasonable default: unbounded iterations, progress logged every
// 10,000 iterations to nowhere (Progress is nil), no checkpoint.
type Options struct {
	// MaxIterations aborts the search after this many iterations. Zero
	// means unbounded.
	MaxIterations int

	// LogEvery controls how often Progress is invoked. Zero defaults
	// to 10,000, matching the external output contract.
	LogEvery int

	// Progress, if set, is called with the iteration count every
	// LogEvery iterations.
	Progress func(iteration int)

	// Checkpoint, if set, persists the visited set so a search over
	// the same deal can resume after an interruption.
	Checkpoint *checkpoint.Store

	// Context, if set, is polled once per iteration; cancellation
	// aborts the search the same way MaxIterations does. A nil
	// Context behaves as context.Background, and the search never
	// aborts on its own.
	Context context.Context
}

// Result is a successful search outcome.
type Result struct {
	Actions    []game.Action
	Iterations int
}

// Solve runs the best-first loop described in spec §4.5 starting from
// root, which must already be canonical (the product of BuildRoot or
// Transit). It returns ErrNoSolution if the frontier empties without
// reaching a card_count == 0 state, or ErrIterationLimit if
// Options.MaxIterations is reached first.
func Solve(root *game.State, opts Options) (*Result, error) {
	logEvery := opts.LogEvery
	if logEvery <= 0 {
		logEvery = 10000
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	visited, err := loadVisited(root, opts.Checkpoint)
	if err != nil {
		return nil, err
	}

	frontier := &stateHeap{root}
	heap.Init(frontier)
	visited[root.Key()] = struct{}{}
	if err := markVisited(opts.Checkpoint, root.Key()); err != nil {
		return nil, err
	}

	iterations := 0
	for frontier.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := heap.Pop(frontier).(*game.State)

		if current.CardCount() == 0 {
			return &Result{Actions: reconstruct(current), Iterations: iterations}, nil
		}

		novel, err := pushNovel(frontier, visited, opts.Checkpoint, current, current.ValidActions())
		if err != nil {
			return nil, err
		}
		if novel == 0 {
			if _, err := pushNovel(frontier, visited, opts.Checkpoint, current, current.ValidSlotActions()); err != nil {
				return nil, err
			}
		}

		iterations++
		if opts.Progress != nil && iterations%logEvery == 0 {
			opts.Progress(iterations)
		}
		if opts.MaxIterations > 0 && iterations >= opts.MaxIterations {
			return nil, ErrIterationLimit
		}
	}

	return nil, ErrNoSolution
}

func loadVisited(root *game.State, store *checkpoint.Store) (map[string]struct{}, error) {
	if store == nil {
		return map[string]struct{}{}, nil
	}

	meta, err := store.LoadMeta()
	if err != nil {
		return nil, err
	}
	if meta != nil && meta.RootKey == root.Key() {
		return store.LoadVisited()
	}

	// Either there is no prior checkpoint, or it belongs to a
	// different deal: start fresh.
	if err := store.Reset(); err != nil {
		return nil, err
	}
	if err := store.SaveMeta(root.Key()); err != nil {
		return nil, err
	}
	return map[string]struct{}{}, nil
}

func markVisited(store *checkpoint.Store, key string) error {
	if store == nil {
		return nil
	}
	return store.MarkVisited(key)
}

func pushNovel(frontier *stateHeap, visited map[string]struct{}, store *checkpoint.Store, state *game.State, actions []game.Action) (int, error) {
	novel := 0
	for _, action := range actions {
		next := state.Transit(action)
		key := next.Key()
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}
		if err := markVisited(store, key); err != nil {
			return novel, err
		}
		heap.Push(frontier, next)
		novel++
	}
	return novel, nil
}

// reconstruct walks goal's prev chain, collecting actions, and
// reverses the result so it reads root-to-goal.
func reconstruct(goal *game.State) []game.Action {
	var actions []game.Action
	for current := goal; ; {
		action, ok := current.LastAction()
		if !ok {
			break
		}
		actions = append(actions, action)
		current = current.Prev()
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
