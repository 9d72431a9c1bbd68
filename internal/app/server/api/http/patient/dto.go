package patient

import (
	"medvault/internal/domain/patient"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Patients []patient.View `json:"patients"`
	Total    int            `json:"total"`
}

type findInput struct {
	ID string `path:"id" doc:"Patient record ID"`
}

type viewOutput struct {
	Body patient.View
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name                string `json:"name" doc:"Patient full name" minLength:"1"`
	Diagnosis           string `json:"diagnosis" doc:"Free-text diagnosis" minLength:"1"`
	Age                 int    `json:"age" doc:"Patient age" minimum:"0"`
	Contact             string `json:"contact" doc:"Contact information" minLength:"1"`
	AssignedClinicianID *int   `json:"assigned_clinician_id,omitempty" doc:"Assigned clinician user ID"`
	AnonymizedName      string `json:"anonymized_name,omitempty" doc:"Explicit anonymized display token"`
	AnonymizedContact   string `json:"anonymized_contact,omitempty" doc:"Explicit masked contact"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Patient record ID"`
	Body updateRequest
}

type updateRequest struct {
	Name                *string `json:"name,omitempty" doc:"Patient full name"`
	Diagnosis           *string `json:"diagnosis,omitempty" doc:"Free-text diagnosis"`
	Age                 *int    `json:"age,omitempty" doc:"Patient age"`
	Contact             *string `json:"contact,omitempty" doc:"Contact information"`
	AssignedClinicianID *int    `json:"assigned_clinician_id,omitempty" doc:"Assigned clinician user ID"`
}
