package audit

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "audit-list",
		Method:      http.MethodGet,
		Path:        "/api/audit",
		Summary:     "List access log entries",
		Description: "Administrator only. Newest entries first.",
		Tags:        []string{"audit"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "audit-export",
		Method:      http.MethodGet,
		Path:        "/api/audit/export",
		Summary:     "Export the access log as CSV",
		Tags:        []string{"audit"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
