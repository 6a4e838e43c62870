package capacity

import (
	"strings"

	"github.com/noah-isme/contract-capacity-api/internal/models"
)

// NewInstructor registers a manually entered instructor: the name is stored
// upper-cased, blank enum tokens fall back to their defaults and capacity starts
// at the default weekly figure.
func NewInstructor(id, name, area string, contract models.ContractType, workShift string) models.Instructor {
	if strings.TrimSpace(area) == "" {
		area = models.DefaultArea
	}
	if contract == "" {
		contract = models.ContractSalaried
	}
	if strings.TrimSpace(workShift) == "" {
		workShift = models.DefaultWorkShift
	}
	return models.Instructor{
		ID:           id,
		Name:         strings.ToUpper(strings.TrimSpace(name)),
		Area:         strings.TrimSpace(area),
		ContractType: contract,
		WeeklyHours:  models.DefaultWeeklyHours,
		Status:       models.InstructorActive,
		WorkShift:    strings.TrimSpace(workShift),
	}
}

// ToggleContract flips between salaried-monthly and hourly.
func ToggleContract(inst models.Instructor) models.Instructor {
	if inst.ContractType == models.ContractSalaried {
		inst.ContractType = models.ContractHourly
	} else {
		inst.ContractType = models.ContractSalaried
	}
	return inst
}

// ToggleStatus flips between active and inactive.
func ToggleStatus(inst models.Instructor) models.Instructor {
	if inst.Status == models.InstructorActive {
		inst.Status = models.InstructorInactive
	} else {
		inst.Status = models.InstructorActive
	}
	return inst
}

// WithMonthlyCapacity stores a monthly figure as weekly capacity.
func WithMonthlyCapacity(inst models.Instructor, monthly float64) models.Instructor {
	inst.WeeklyHours = WeeklyFromMonthly(monthly)
	return inst
}

// MonthlyCapacity is the monthly figure derived from the stored weekly capacity.
func MonthlyCapacity(inst models.Instructor) float64 {
	return MonthlyFromWeekly(inst.WeeklyHours)
}
