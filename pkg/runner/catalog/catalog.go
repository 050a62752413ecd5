// Package catalog prints the browsable activity catalog.
package catalog

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/printers"
)

type Catalog struct {
	Query    string
	Category activity.Category
	JSON     bool
	Out      io.Writer

	Planner *app.Planner
}

func (n *Catalog) Do(_ context.Context) error {
	if n.Planner == nil {
		return errors.New("catalog: planner required")
	}
	listings := n.Planner.Browse(n.Query, n.Category)

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(listings)
	}
	th := n.Planner.Theme()
	pp.TitleWithCount(th.Name+" picks are starred", len(listings))
	pp.Catalog(listings)
	return nil
}
