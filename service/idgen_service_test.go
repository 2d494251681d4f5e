package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

func newIdentifierFixture() (service.IdentifierService, *fakeEmployeeRepo, *fakeProjectRepo, *fakeTaskRepo) {
	employees := newFakeEmployeeRepo()
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	ids := service.NewIdentifierService(newFakeCounterRepo(), employees, projects, tasks)
	return ids, employees, projects, tasks
}

func TestNextEmployeeIDSeedsFromLegacyMax(t *testing.T) {
	ctx := context.Background()
	ids, employees, _, _ := newIdentifierFixture()

	// A populated tenant continues its sequence instead of restarting.
	require.NoError(t, employees.Create(ctx, employee("Web Blaze", "WB-002", types.ROLE_TEAM_MEMBER)))
	require.NoError(t, employees.Create(ctx, employee("Web Blaze", "WB-010", types.ROLE_TEAM_MEMBER)))

	id, err := ids.NextEmployeeID(ctx, "Web Blaze")
	require.NoError(t, err)
	require.Equal(t, "WB-011", id)

	id, err = ids.NextEmployeeID(ctx, "Web Blaze")
	require.NoError(t, err)
	require.Equal(t, "WB-012", id)
}

func TestNextProjectIDNeverReusesAfterDelete(t *testing.T) {
	ctx := context.Background()
	ids, _, projects, _ := newIdentifierFixture()

	require.NoError(t, projects.Create(ctx, &types.Project{
		ProjectID:   "WB-Pr-1",
		ProjectName: "First",
		CompanyName: "Web Blaze",
	}))

	id, err := ids.NextProjectID(ctx, "Web Blaze")
	require.NoError(t, err)
	require.Equal(t, "WB-Pr-2", id)

	// Deleting the highest project must not roll the counter back.
	require.NoError(t, projects.Delete(ctx, "Web Blaze", "WB-Pr-1", ""))
	id, err = ids.NextProjectID(ctx, "Web Blaze")
	require.NoError(t, err)
	require.Equal(t, "WB-Pr-3", id)
}

func TestNextPhaseIDCountsTenantWide(t *testing.T) {
	ctx := context.Background()
	ids, _, projects, _ := newIdentifierFixture()

	// Two projects with three phases between them: the next phase is the
	// fourth of the tenant, regardless of which project it lands in.
	require.NoError(t, projects.Create(ctx, &types.Project{
		ProjectID:   "WB-Pr-1",
		CompanyName: "Web Blaze",
		Phases:      []types.Phase{{PhaseID: "WB-ph-1"}, {PhaseID: "WB-ph-2"}},
	}))
	require.NoError(t, projects.Create(ctx, &types.Project{
		ProjectID:   "WB-Pr-2",
		CompanyName: "Web Blaze",
		Phases:      []types.Phase{{PhaseID: "WB-ph-3"}},
	}))

	id, err := ids.NextPhaseID(ctx, "Web Blaze")
	require.NoError(t, err)
	require.Equal(t, "WB-ph-4", id)
}

func TestNextTaskIDPaddedWithPrefix(t *testing.T) {
	ctx := context.Background()
	ids, _, _, tasks := newIdentifierFixture()

	require.NoError(t, tasks.Create(ctx, &types.Task{
		TaskID:      "WB-TSK-009",
		CompanyName: "Web Blaze",
	}))

	id, err := ids.NextTaskID(ctx, "Web Blaze")
	require.NoError(t, err)
	require.Equal(t, "WB-TSK-010", id)
}

func TestIdentifierSequencesAreTenantScoped(t *testing.T) {
	ctx := context.Background()
	ids, employees, _, _ := newIdentifierFixture()

	require.NoError(t, employees.Create(ctx, employee("Web Blaze", "WB-005", types.ROLE_TEAM_MEMBER)))

	id, err := ids.NextEmployeeID(ctx, "Web Blaze")
	require.NoError(t, err)
	require.Equal(t, "WB-006", id)

	// A second tenant starts its own sequence at 1.
	id, err = ids.NextEmployeeID(ctx, "Acme Corp")
	require.NoError(t, err)
	require.Equal(t, "AC-001", id)
}
