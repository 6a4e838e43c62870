package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contract-capacity-api/internal/models"
)

func TestScheduleBatchCreatesOnePerDate(t *testing.T) {
	existing := []models.InstructorActivity{{ID: "old", InstructorID: "i9", Code: "PL", Hours: 2, Date: "2025-12-01", Shift: models.ShiftMorning}}
	sel, err := NewDateSelection("2026-01-07", "2026-01-02", "2026-01-15")
	require.NoError(t, err)
	tmpl := models.ActivityTemplate{InstructorID: "i1", Code: "PL", Hours: 4, Shift: models.ShiftEvening}

	updated, created := ScheduleBatch(existing, tmpl, sel, &CounterGenerator{Prefix: "act"})

	require.Len(t, created, 3)
	require.Len(t, updated, 4)
	assert.Equal(t, existing[0], updated[0])
	ids := map[string]struct{}{}
	for i, act := range created {
		ids[act.ID] = struct{}{}
		assert.Equal(t, "i1", act.InstructorID)
		assert.Equal(t, "PL", act.Code)
		assert.Equal(t, 4.0, act.Hours)
		assert.Equal(t, models.ShiftEvening, act.Shift)
		assert.Equal(t, created[i], updated[i+1])
	}
	assert.Len(t, ids, 3)
	assert.Equal(t, []string{"2026-01-02", "2026-01-07", "2026-01-15"},
		[]string{created[0].Date, created[1].Date, created[2].Date})
	assert.Equal(t, "act-1", created[0].ID)
	assert.Zero(t, sel.Len(), "selection is cleared after a batch")
}

func TestScheduleBatchNoSelectionIsNoop(t *testing.T) {
	existing := []models.InstructorActivity{{ID: "old"}}
	sel, err := NewDateSelection()
	require.NoError(t, err)

	updated, created := ScheduleBatch(existing, models.ActivityTemplate{InstructorID: "i1"}, sel, nil)

	assert.Nil(t, created)
	assert.Equal(t, existing, updated)

	updated, created = ScheduleBatch(existing, models.ActivityTemplate{InstructorID: "i1"}, nil, nil)
	assert.Nil(t, created)
	assert.Equal(t, existing, updated)
}

func TestExpandBatchUsesUUIDsByDefault(t *testing.T) {
	sel, err := NewDateSelection("2026-03-01", "2026-03-02")
	require.NoError(t, err)

	created := ExpandBatch(models.ActivityTemplate{InstructorID: "i1"}, sel, nil)

	require.Len(t, created, 2)
	assert.Len(t, created[0].ID, 36)
	assert.NotEqual(t, created[0].ID, created[1].ID)
	assert.Equal(t, 2, sel.Len(), "expanding does not clear the selection")
}
