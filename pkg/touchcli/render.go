package touchcli

import (
	"fmt"
	"io"

	"github.com/dansimau/touch/pkg/touch"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const displayTimeFormat = "2006-01-02 15:04:05.000000000 -0700"

// renderPlan prints what a touch would do, for --dry-run.
func renderPlan(w io.Writer, plan touch.Plan) {
	darkGray := color.New(color.FgHiBlack).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if plan.Decision == touch.SkipSilently {
		fmt.Fprintf(w, "[DRY-RUN] %s does not exist and would not be created\n", plan.Target)
		return
	}

	if plan.Exists {
		fmt.Fprintf(w, "[DRY-RUN] Would update %s\n", plan.Target)
	} else {
		fmt.Fprintf(w, "[DRY-RUN] Would create %s\n", plan.Target)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Timestamp", "Current", "New", "Action"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	current := [2]string{"-", "-"}
	if plan.Current != nil {
		current[0] = plan.Current.Access.Format(displayTimeFormat)
		current[1] = plan.Current.Modification.Format(displayTimeFormat)
	}

	next := [2]string{
		plan.Pair.Access.Format(displayTimeFormat),
		plan.Pair.Modification.Format(displayTimeFormat),
	}

	for i, slot := range []touch.Slots{touch.AccessSlot, touch.ModificationSlot} {
		name := "access"
		if slot == touch.ModificationSlot {
			name = "modification"
		}

		if plan.Slots.Has(slot) {
			table.Append([]string{name, current[i], next[i], yellow("set")})
		} else {
			table.Append([]string{name, current[i], current[i], darkGray("keep")})
		}
	}

	table.Render()
}
