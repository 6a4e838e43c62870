package capacity

import "github.com/noah-isme/contract-capacity-api/internal/models"

// ApplyWorkload returns a copy of instructors where every instructor matched
// by a preview row gets weekly capacity row.Hours/4 and an hourly contract.
// When several rows resolve to the same instructor the first row wins.
// The input slice is left untouched and applying the same preview twice
// yields the same collection.
func ApplyWorkload(instructors []models.Instructor, preview []models.ImportPreviewRow) []models.Instructor {
	hoursByID := make(map[string]float64, len(preview))
	for _, row := range preview {
		if row.MatchedID == nil {
			continue
		}
		if _, seen := hoursByID[*row.MatchedID]; seen {
			continue
		}
		hoursByID[*row.MatchedID] = row.Hours
	}

	updated := make([]models.Instructor, len(instructors))
	for i, inst := range instructors {
		if hours, ok := hoursByID[inst.ID]; ok {
			inst.WeeklyHours = WeeklyFromMonthly(hours)
			inst.ContractType = models.ContractHourly
		}
		updated[i] = inst
	}
	return updated
}

// ChangedInstructors returns the entries of after whose capacity or contract
// differ from the instructor with the same id in before.
func ChangedInstructors(before, after []models.Instructor) []models.Instructor {
	previous := make(map[string]models.Instructor, len(before))
	for _, inst := range before {
		previous[inst.ID] = inst
	}
	var changed []models.Instructor
	for _, inst := range after {
		old, ok := previous[inst.ID]
		if !ok || old.WeeklyHours != inst.WeeklyHours || old.ContractType != inst.ContractType {
			changed = append(changed, inst)
		}
	}
	return changed
}
