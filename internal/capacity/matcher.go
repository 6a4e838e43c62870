package capacity

import "github.com/noah-isme/contract-capacity-api/internal/models"

// MatchWorkload resolves every parsed row to the first instructor, in
// collection order, whose normalized name equals the row's. Rows keep their
// input order; unmatched rows carry a nil MatchedID. A key shared by several
// instructors still resolves to the first one and the row is flagged Ambiguous.
func MatchWorkload(rows []WorkloadRow, instructors []models.Instructor) []models.ImportPreviewRow {
	index := make(map[string][]string, len(instructors))
	for _, inst := range instructors {
		key := NormalizeName(inst.Name)
		index[key] = append(index[key], inst.ID)
	}

	preview := make([]models.ImportPreviewRow, 0, len(rows))
	for _, row := range rows {
		item := models.ImportPreviewRow{Name: row.Name, Hours: row.Hours}
		if ids := index[NormalizeName(row.Name)]; len(ids) > 0 {
			id := ids[0]
			item.MatchedID = &id
			item.Ambiguous = len(ids) > 1
		}
		preview = append(preview, item)
	}
	return preview
}

// CountMatches splits a preview into matched and unmatched totals.
func CountMatches(preview []models.ImportPreviewRow) (matched, unmatched int) {
	for _, row := range preview {
		if row.Matched() {
			matched++
		} else {
			unmatched++
		}
	}
	return matched, unmatched
}
