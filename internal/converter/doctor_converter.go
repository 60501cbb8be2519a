package converter

import (
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity, with its cabinet if loaded, to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	createdAt, updatedAt := doctor.CreatedAt, doctor.UpdatedAt
	response := &dto.DoctorResponse{
		DoctorID:  doctor.ID,
		Email:     doctor.Email,
		FirstName: doctor.FirstName,
		LastName:  doctor.LastName,
		Phone:     doctor.Phone,
		Specialty: doctor.Specialty,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}

	if doctor.Cabinet != nil {
		name, address, schedule := doctor.Cabinet.Name, doctor.Cabinet.Address, doctor.Cabinet.Schedule
		response.CabinetName = &name
		response.CabinetAddress = &address
		response.Schedule = &schedule
	}

	return response
}

// DoctorToProfileResponse converts a Doctor entity to ProfileResponse DTO
func DoctorToProfileResponse(doctor *entity.Doctor) *dto.ProfileResponse {
	if doctor == nil {
		return nil
	}

	return &dto.ProfileResponse{
		DoctorID:  doctor.ID,
		Email:     doctor.Email,
		FirstName: doctor.FirstName,
		LastName:  doctor.LastName,
		Phone:     doctor.Phone,
		Specialty: doctor.Specialty,
	}
}

func CabinetToResponse(cabinet *entity.Cabinet) *dto.CabinetResponse {
	if cabinet == nil {
		return nil
	}

	return &dto.CabinetResponse{
		CabinetID:      cabinet.ID,
		CabinetName:    cabinet.Name,
		CabinetAddress: cabinet.Address,
		Schedule:       cabinet.Schedule,
	}
}
