package converter

import (
	"time"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		DoctorID:  patient.DoctorID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Email:     patient.Email,
		Phone:     patient.Phone,
		BirthDate: formatDate(patient.BirthDate),
		Gender:    patient.Gender,
		Status:    patient.Status,
		CreatedAt: patient.CreatedAt,
	}
}

// PatientsWithStatsToListItems converts aggregated patient rows to PatientListItem DTOs
func PatientsWithStatsToListItems(patients []entity.PatientWithStats) []dto.PatientListItem {
	items := make([]dto.PatientListItem, len(patients))
	for i := range patients {
		p := &patients[i]
		items[i] = dto.PatientListItem{
			PatientResponse: *PatientToResponse(&p.Patient),
			LastVisit:       formatDate(p.LastVisit),
			NextVisit:       formatDate(p.NextVisit),
			TotalPast:       p.TotalPast,
			TotalFuture:     p.TotalFuture,
			NRPCount:        p.NRPCount,
		}
	}
	return items
}
