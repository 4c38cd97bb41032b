package commands_test

import (
	"slices"
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportTemplatesCommandHandler_Handle_ResolvesStoredTasks(t *testing.T) {
	ctx := t.Context()
	brakes, _ := template.NewTask(kernel.NewUUID(), "Brakes", "", 20)
	stored, _ := template.NewTask(kernel.NewUUID(), "Lights", "", 5)
	workflow, _ := template.NewWorkflow(kernel.NewUUID(), "Inspection", "", []kernel.UUID{brakes.ID(), stored.ID()})
	cmd, err := commands.NewImportTemplatesCommand([]*template.Task{brakes}, []*template.Workflow{workflow})
	require.NoError(t, err)

	templates := new(MockTemplateRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TemplateRepository").Return(templates).Once(),
		templates.On("SaveTask", ctx, brakes).Return(nil).Once(),
		templates.On("GetTasks", ctx, []kernel.UUID{stored.ID()}).Return([]*template.Task{stored}, nil).Once(),
		templates.On("GetWorkflow", ctx, workflow.ID()).
			Return(nil, errs.NewObjectNotFoundError("workflow template", workflow.ID())).Once(),
		templates.On("SaveWorkflow", ctx, workflow).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTemplateUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewImportTemplatesCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	templates.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportTemplatesCommandHandler_Handle_UnknownTask(t *testing.T) {
	ctx := t.Context()
	missing := kernel.NewUUID()
	workflow, _ := template.NewWorkflow(kernel.NewUUID(), "Inspection", "", []kernel.UUID{missing})
	cmd, err := commands.NewImportTemplatesCommand(nil, []*template.Workflow{workflow})
	require.NoError(t, err)

	templates := new(MockTemplateRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TemplateRepository").Return(templates).Once(),
		templates.On("GetTasks", ctx, []kernel.UUID{missing}).Return([]*template.Task{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTemplateUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewImportTemplatesCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	templates.AssertNotCalled(t, "SaveWorkflow", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestImportTemplatesCommandHandler_Handle_InstantiatedWorkflow(t *testing.T) {
	brakes, _ := template.NewTask(kernel.NewUUID(), "Brakes", "", 20)
	lights, _ := template.NewTask(kernel.NewUUID(), "Lights", "", 5)
	workflowID := kernel.NewUUID()
	stored, _ := template.NewWorkflow(workflowID, "Inspection", "", []kernel.UUID{brakes.ID(), lights.ID()})

	tests := []struct {
		name         string
		taskIDs      []kernel.UUID
		instantiated bool
		wantErr      error
	}{
		{name: "same task list may be renamed", taskIDs: []kernel.UUID{brakes.ID(), lights.ID()}},
		{name: "changed task list without instances", taskIDs: []kernel.UUID{lights.ID(), brakes.ID()}},
		{
			name:         "changed task list with instances",
			taskIDs:      []kernel.UUID{lights.ID(), brakes.ID()},
			instantiated: true,
			wantErr:      errs.ErrStateIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			workflow, err := template.NewWorkflow(workflowID, "Inspection v2", "", tt.taskIDs)
			require.NoError(t, err)
			cmd, err := commands.NewImportTemplatesCommand([]*template.Task{brakes, lights}, []*template.Workflow{workflow})
			require.NoError(t, err)

			templates := new(MockTemplateRepository)
			templates.On("SaveTask", ctx, mock.Anything).Return(nil).Twice()
			templates.On("GetWorkflow", ctx, workflowID).Return(stored, nil).Once()
			templates.On("IsWorkflowInstantiated", ctx, workflowID).Return(tt.instantiated, nil).Maybe()
			templates.On("SaveWorkflow", ctx, workflow).Return(nil).Maybe()

			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("TemplateRepository").Return(templates).Once()
			uow.On("Commit", ctx).Return(nil).Maybe()
			uow.On("Rollback", ctx).Return(nil).Once()
			factory := new(MockTemplateUoWFactory)
			factory.On("Create").Return(uow).Once()

			err = commands.NewImportTemplatesCommandHandler(factory).Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "task list cannot change")
				templates.AssertNotCalled(t, "SaveWorkflow", mock.Anything, mock.Anything)
				uow.AssertNotCalled(t, "Commit", mock.Anything)
				return
			}

			require.NoError(t, err)
			templates.AssertCalled(t, "SaveWorkflow", ctx, workflow)
			uow.AssertCalled(t, "Commit", ctx)
			if slices.Equal(tt.taskIDs, stored.TaskIDs()) {
				templates.AssertNotCalled(t, "IsWorkflowInstantiated", mock.Anything, mock.Anything)
			}
		})
	}
}
