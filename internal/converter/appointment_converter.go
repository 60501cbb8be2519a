package converter

import (
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Patient identity is included when the patient was joined.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		CabinetID:       appointment.CabinetID,
		AppointmentDate: appointment.AppointmentDate.Format(DateLayout),
		Status:          string(appointment.Status),
		VisitType:       appointment.VisitType,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
	}

	if p := appointment.Patient; p != nil && p.ID != 0 {
		firstName, lastName, phone := p.FirstName, p.LastName, p.Phone
		response.PatientFirstName = &firstName
		response.PatientLastName = &lastName
		response.PatientPhone = &phone
		response.PatientEmail = p.Email
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
