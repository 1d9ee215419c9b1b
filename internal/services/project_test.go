package services

import (
	"context"
	"testing"
	"time"

	"github.com/projectboard/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateAndList(t *testing.T) {
	svc := NewProjectService(testutil.NewDB(t))
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	created, err := svc.Create(ctx, &CreateProjectRequest{Name: "Auth Revamp", StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, &CreateProjectRequest{Name: "Billing"})
	require.NoError(t, err)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Auth Revamp", projects[0].Name)
	assert.Equal(t, "Billing", projects[1].Name)
}

func TestProjectService_CreateRejectsInvertedDates(t *testing.T) {
	svc := NewProjectService(testutil.NewDB(t))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err := svc.Create(context.Background(), &CreateProjectRequest{Name: "Backwards", StartDate: &start, EndDate: &end})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
