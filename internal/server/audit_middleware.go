package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
)

const maxAuditBody = 4 << 10

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		handler, action := getHandlerName(r.URL.Path, r.Method)
		entry := repository.AuditLogPayload{
			Timestamp:  time.Now().UTC(),
			Method:     r.Method,
			Path:       r.URL.Path,
			Handler:    handler,
			Action:     action,
			EntityType: "return",
			ReturnID:   mux.Vars(r)["id"],
			Actor:      r.Header.Get("X-Actor"),
		}
		if username, _, ok := r.BasicAuth(); ok {
			entry.Actor = username
		}

		skipRequestBody := strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data")
		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = truncate(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = truncate(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func truncate(b []byte) string {
	if len(b) > maxAuditBody {
		return string(b[:maxAuditBody])
	}
	return string(b)
}

// getHandlerName names the handler and the audited action for a request.
func getHandlerName(path string, method string) (string, string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case strings.HasPrefix(path, "/admin/returns"):
		switch {
		case len(parts) == 2:
			return "handleSearch", "search"
		case len(parts) == 3 && parts[2] == "stats":
			return "handleStats", "stats"
		case len(parts) == 3 && parts[2] == "export":
			return "handleExport", "export"
		case len(parts) == 3 && parts[2] == "statuses":
			return "handleStatuses", "statuses"
		case len(parts) == 3 && method == http.MethodDelete:
			return "handleDelete", "delete"
		case len(parts) == 3:
			return "handleAdminGet", "view"
		case len(parts) == 4 && parts[3] == "refund" && method == http.MethodGet:
			return "handleRefundCheck", "refund_check"
		case len(parts) == 4 && parts[3] != "":
			action := parts[3]
			return "handle" + strings.ToUpper(action[:1]) + action[1:], action
		}
	case strings.HasPrefix(path, "/orders/") && strings.HasSuffix(path, "/eligibility"):
		return "handleEligibility", "eligibility"
	case strings.HasPrefix(path, "/contacts/"):
		return "handleContactReturns", "list"
	case path == "/returns" && method == http.MethodPost:
		return "handleCreateReturn", "create"
	case path == "/returns/reasons":
		return "handleReasons", "reasons"
	case path == "/returns/images":
		return "handleUploadImage", "upload_image"
	case strings.HasPrefix(path, "/returns/") && len(parts) == 3:
		switch parts[2] {
		case "status":
			return "handleReturnStatus", "status"
		case "track":
			return "handleTrack", "track"
		case "label":
			return "handleLabel", "label"
		}
	}

	return "unknown", "unknown"
}
