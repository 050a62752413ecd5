// Package watch follows the store and reprints the weekend when another
// process changes it.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/printers"
	"tableflip.dev/weekend/pkg/store"
)

type Watch struct {
	Store   *store.Store
	Planner *app.Planner
	Log     *zap.Logger
	Out     io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil || n.Planner == nil {
		return errors.New("watch: store and planner required")
	}
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}

	events, err := n.Store.Watch(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Grid(n.Planner.State())
	_, _ = fmt.Fprintln(pp.Writer(), "watching for changes, ctrl-c to stop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.Debug("store changed", zap.String("key", ev.Key), zap.Int("type", int(ev.Type)))
			if err := n.Planner.Hydrate(ctx); err != nil {
				log.Warn("re-reading store", zap.Error(err))
				continue
			}
			pp.Grid(n.Planner.State())
		}
	}
}
