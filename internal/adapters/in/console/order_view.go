// Package console renders read models for terminal output.
package console

import (
	"fmt"
	"io"
	"time"

	"workshop/internal/core/application/usecases/queries"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderOrder writes the order rollup as one summary table followed by one
// table per workflow instance.
func RenderOrder(w io.Writer, detail queries.GetOrderDetailQueryResponse) {
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleLight)
	summary.SetTitle("Order " + detail.ID.String())
	summary.AppendRows([]table.Row{
		{"Status", detail.Status.String()},
		{"Car", detail.CarID.String()},
		{"Customer", detail.CustomerID.String()},
		{"Total time", fmt.Sprintf("%d min", detail.TotalTime)},
		{"Created", detail.CreatedAt.Format(time.RFC3339)},
		{"Updated", detail.UpdatedAt.Format(time.RFC3339)},
	})
	summary.Render()

	for _, wi := range detail.WorkflowInstances {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleLight)
		tw.SetTitle(fmt.Sprintf("%s [%s]", wi.Name, wi.Status))
		tw.AppendHeader(table.Row{"#", "Task", "Status", "Duration", "Started", "Completed", "Comments"})
		for i, ti := range wi.TaskInstances {
			tw.AppendRow(table.Row{
				i + 1,
				ti.Name,
				ti.Status.String(),
				ti.Duration,
				formatTime(ti.StartedAt),
				formatTime(ti.CompletedAt),
				deref(ti.Comments),
			})
		}
		tw.Render()
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
