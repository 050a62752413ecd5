package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as a JSON object when --json is set, tagged with a
// stable reason for the errors callers are expected to branch on.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		if r := reason(err); r != "" {
			out["reason"] = r
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

func reason(err error) string {
	switch {
	case errors.Is(err, app.ErrUnknownActivity):
		return "UnknownActivity"
	case errors.Is(err, app.ErrNotSelected):
		return "NotSelected"
	case errors.Is(err, app.ErrPlanName):
		return "PlanName"
	case errors.Is(err, app.ErrEmptyPlan):
		return "EmptyPlan"
	case errors.Is(err, app.ErrPlanNotFound):
		return "PlanNotFound"
	case errors.Is(err, plan.ErrUnknownDay), errors.Is(err, plan.ErrUnknownTimeSlot):
		return "InvalidSlot"
	case errors.Is(err, plan.ErrUnknownVibe):
		return "InvalidVibe"
	}
	return ""
}
