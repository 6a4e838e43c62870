package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

func newTestExportService(activities *mockActivityRepo) *ExportService {
	svc := NewExportService(seededInstructorRepo(), newTestActivityService(activities), zap.NewNop(), nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestExportServiceCapacitySheetRoundTrips(t *testing.T) {
	svc := newTestExportService(&mockActivityRepo{})

	file, err := svc.CapacitySheet(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "capacidade-20260415.csv", file.FileName)
	assert.True(t, bytes.Contains(file.Data, []byte{'J', 'O', 0xC3, 'O'}), "sheet should be Windows-1252 encoded")

	content, err := capacity.DecodeWorkload(file.Data)
	require.NoError(t, err)
	parsed, err := capacity.ParseWorkload(content)
	require.NoError(t, err)
	assert.Equal(t, []capacity.WorkloadRow{
		{Name: "JOÃO SILVA", Hours: 160},
		{Name: "MARIA SOUZA", Hours: 80},
		{Name: "PEDRO ALVES", Hours: 40},
	}, parsed.Rows)
	assert.Equal(t, 0, parsed.Skipped)
}

func TestExportServiceCapacitySheetReimportsDelimiterInName(t *testing.T) {
	repo := &mockInstructorRepo{items: []models.Instructor{
		{ID: "i1", Name: "ANA; BEATRIZ", ContractType: models.ContractHourly, WeeklyHours: 30, Status: models.InstructorActive},
		{ID: "i2", Name: `CARLOS "CACÁ" LIMA`, ContractType: models.ContractHourly, WeeklyHours: 5, Status: models.InstructorActive},
	}}
	svc := NewExportService(repo, newTestActivityService(&mockActivityRepo{}), zap.NewNop(), nil, nil)

	file, err := svc.CapacitySheet(context.Background(), "")
	require.NoError(t, err)

	content, err := capacity.DecodeWorkload(file.Data)
	require.NoError(t, err)
	parsed, err := capacity.ParseWorkload(content)
	require.NoError(t, err)
	assert.Equal(t, []capacity.WorkloadRow{
		{Name: "ANA BEATRIZ", Hours: 120},
		{Name: "CARLOS CACÁ LIMA", Hours: 20},
	}, parsed.Rows)
	assert.Zero(t, parsed.Skipped)

	preview := capacity.MatchWorkload(parsed.Rows, repo.items)
	require.Len(t, preview, 2)
	require.NotNil(t, preview[0].MatchedID)
	assert.Equal(t, "i1", *preview[0].MatchedID)
	require.NotNil(t, preview[1].MatchedID)
	assert.Equal(t, "i2", *preview[1].MatchedID)
}

func TestExportServiceCapacitySheetSearch(t *testing.T) {
	svc := newTestExportService(&mockActivityRepo{})

	file, err := svc.CapacitySheet(context.Background(), "gestao")
	require.NoError(t, err)
	assert.Equal(t, "nome;carga mensal\r\nMARIA SOUZA;80\r\n", string(file.Data))
}

func TestExportServiceAgendaPDF(t *testing.T) {
	name := "JOÃO SILVA"
	repo := &mockActivityRepo{listed: []models.ActivityWithInstructor{
		{InstructorActivity: models.InstructorActivity{ID: "a1", InstructorID: "i1", Code: "PL", Hours: 2, Date: "2026-04-03", Shift: models.ShiftMorning}, InstructorName: &name},
		{InstructorActivity: models.InstructorActivity{ID: "a2", InstructorID: "gone", Code: "PL", Hours: 1, Date: "2026-04-09", Shift: models.ShiftEvening}},
	}}
	svc := newTestExportService(repo)

	file, err := svc.AgendaPDF(context.Background(), "2026-04")
	require.NoError(t, err)
	assert.Equal(t, "agenda-2026-04.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))

	_, err = svc.AgendaPDF(context.Background(), "abril")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
