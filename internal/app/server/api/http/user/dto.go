package user

import "medvault/internal/domain/user"

type loginInput struct {
	Body credentialsRequest
}

type credentialsRequest struct {
	Login    string `json:"login" minLength:"1"`
	Password string `json:"password" minLength:"1"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type logoutOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Login    string `json:"login" minLength:"1"`
	Password string `json:"password" minLength:"1"`
	Role     string `json:"role" doc:"One of administrator, clinician, frontdesk"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id"`
	Status string `json:"status"`
}

type meOutput struct {
	Body Account
}

type Account struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

type cliniciansOutput struct {
	Body CliniciansResponse
}

type CliniciansResponse struct {
	Clinicians []Account `json:"clinicians"`
}

func toAccount(u user.User) Account {
	return Account{
		ID:    u.ID,
		Login: u.Login,
		Role:  string(u.Role),
	}
}
