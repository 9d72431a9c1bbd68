package patient

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-list",
		Method:      http.MethodGet,
		Path:        "/api/patients",
		Summary:     "List patient records visible to the caller",
		Description: "Returns the role-scoped listing: clinicians see only their assigned patients; every row is projected per the caller's disclosure policy.",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-create",
		Method:      http.MethodPost,
		Path:        "/api/patients",
		Summary:     "Register a new patient",
		Description: "Administrator only. Name and diagnosis are encrypted before storage; anonymized fields are derived when absent.",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-find",
		Method:      http.MethodGet,
		Path:        "/api/patients/{id}",
		Summary:     "Get one patient record",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-update",
		Method:      http.MethodPut,
		Path:        "/api/patients/{id}",
		Summary:     "Update a patient record",
		Description: "Administrators may change any field; FrontDesk proposals are reduced to the clinician assignment.",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
