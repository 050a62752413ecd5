package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/weekend/pkg/store"
)

type Info struct {
	Config store.Config
	Store  *store.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("WEEKEND_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "WEEKEND_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "WEEKEND_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("path:", n.Config.BasePath())
	tbl.AddRow("log level:", n.Config.LogLevel())
	tbl.AddRow("log format:", n.Config.LogFormat())
	_, _ = fmt.Fprintln(out, tbl)

	if n.Store == nil {
		return fmt.Errorf("failed to open the store")
	}

	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(out, "Records:")
	keys := n.Store.KV().Keys(ctx)
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
	}
	if len(keys) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no records")
	}
	return nil
}
