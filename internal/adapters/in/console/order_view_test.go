package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"workshop/internal/adapters/in/console"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestRenderOrder(t *testing.T) {
	started := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	note := "pads replaced"
	detail := queries.GetOrderDetailQueryResponse{
		OrderResponse: queries.OrderResponse{
			ID:        kernel.NewUUID(),
			Status:    order.InProgress,
			TotalTime: 25,
		},
		WorkflowInstances: []queries.WorkflowInstanceResponse{{
			Name:   "Inspection",
			Status: order.RunInProgress,
			TaskInstances: []queries.TaskInstanceResponse{
				{Name: "Lights", Status: order.RunCompleted, Duration: 5, StartedAt: &started, CompletedAt: &started, Comments: &note},
				{Name: "Brakes", Status: order.RunInProgress, Duration: 20, StartedAt: &started},
			},
		}},
	}

	var out bytes.Buffer
	console.RenderOrder(&out, detail)
	text := out.String()

	assert.Contains(t, text, detail.ID.String())
	assert.Contains(t, text, "25 min")
	assert.Contains(t, text, "Inspection [IN_PROGRESS]")
	assert.Contains(t, text, note)
	assert.Contains(t, text, "2024-05-01T09:00:00Z")
	assert.Less(t, strings.Index(text, "Lights"), strings.Index(text, "Brakes"))
}
