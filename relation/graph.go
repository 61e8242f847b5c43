package relation

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/ieml/script"
)

// Graph holds the current relation snapshot. Queries read whichever snapshot
// is current; Rebuild swaps in a new one atomically. Graph is safe for
// concurrent use.
type Graph struct {
	opts    Options
	current atomic.Pointer[Snapshot]
}

// NewGraph creates a Graph without a snapshot.
func NewGraph(opts ...Option) *Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{opts: o}
}

// Rebuild computes a new snapshot over roots and makes it current. On any
// error the previous snapshot stays in effect and the error is returned.
func (g *Graph) Rebuild(ctx context.Context, roots []Root) error {
	start := time.Now()
	snap, err := build(ctx, roots, g.opts)
	if err != nil {
		g.opts.Logger.Warn("relation rebuild failed, keeping previous snapshot",
			"roots", len(roots), "error", err)

		return err
	}
	g.current.Store(snap)
	g.opts.Logger.Info("relation snapshot rebuilt",
		"roots", len(roots),
		"terms", snap.dict.Len(),
		"contains", snap.contains.Count(),
		"elapsed", time.Since(start))

	return nil
}

// Snapshot returns the current snapshot.
func (g *Graph) Snapshot() (*Snapshot, error) {
	snap := g.current.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}

	return snap, nil
}

// Relations queries the current snapshot; see Snapshot.Relations.
func (g *Graph) Relations(s *script.Script, kind Kind) ([]*script.Script, error) {
	snap, err := g.Snapshot()
	if err != nil {
		return nil, err
	}

	return snap.Relations(s, kind)
}

// TableRank queries the current snapshot; see Snapshot.TableRank.
func (g *Graph) TableRank(p *script.Script) (int, error) {
	snap, err := g.Snapshot()
	if err != nil {
		return 0, err
	}

	return snap.TableRank(p)
}
