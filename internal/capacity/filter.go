package capacity

import (
	"strings"

	"github.com/noah-isme/contract-capacity-api/internal/models"
)

// FilterInstructors keeps, in order, the instructors whose name or area
// contains query, ignoring case. A blank query keeps everyone.
func FilterInstructors(instructors []models.Instructor, query string) []models.Instructor {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Instructor, 0, len(instructors))
	for _, inst := range instructors {
		if query == "" ||
			strings.Contains(strings.ToLower(inst.Name), query) ||
			strings.Contains(strings.ToLower(inst.Area), query) {
			out = append(out, inst)
		}
	}
	return out
}
