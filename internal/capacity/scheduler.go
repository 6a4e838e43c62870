package capacity

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/noah-isme/contract-capacity-api/internal/models"
)

// IDGenerator hands out identities for new records.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NewID implements IDGenerator.
func (f IDGeneratorFunc) NewID() string { return f() }

// UUIDGenerator issues random UUIDs.
var UUIDGenerator IDGenerator = IDGeneratorFunc(uuid.NewString)

// CounterGenerator issues prefix-1, prefix-2, ... and is safe for concurrent use.
type CounterGenerator struct {
	Prefix string
	next   uint64
}

// NewID implements IDGenerator.
func (g *CounterGenerator) NewID() string {
	return fmt.Sprintf("%s-%d", g.Prefix, atomic.AddUint64(&g.next, 1))
}

// ExpandBatch builds one activity per selected date from the template, in
// ascending date order. An empty selection yields nothing.
func ExpandBatch(tmpl models.ActivityTemplate, sel *DateSelection, ids IDGenerator) []models.InstructorActivity {
	if sel.Len() == 0 {
		return nil
	}
	if ids == nil {
		ids = UUIDGenerator
	}
	created := make([]models.InstructorActivity, 0, sel.Len())
	for _, date := range sel.Dates() {
		created = append(created, models.InstructorActivity{
			ID:           ids.NewID(),
			InstructorID: tmpl.InstructorID,
			Code:         tmpl.Code,
			Hours:        tmpl.Hours,
			Date:         date,
			Shift:        tmpl.Shift,
		})
	}
	return created
}

// ScheduleBatch appends the expanded batch to activities and clears the
// selection. With nothing selected the collection comes back unchanged and the
// selection is left as is.
func ScheduleBatch(activities []models.InstructorActivity, tmpl models.ActivityTemplate, sel *DateSelection, ids IDGenerator) (updated, created []models.InstructorActivity) {
	created = ExpandBatch(tmpl, sel, ids)
	if len(created) == 0 {
		return activities, nil
	}
	updated = make([]models.InstructorActivity, 0, len(activities)+len(created))
	updated = append(updated, activities...)
	updated = append(updated, created...)
	sel.Clear()
	return updated, created
}
