package server

import (
	"net/http"
	"strconv"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

const dateLayout = "2006-01-02"

// parseFilter reads status, date_from, date_to and search query parameters.
// date_to covers the whole day.
func parseFilter(r *http.Request) (returns.SearchFilter, string) {
	q := r.URL.Query()
	filter := returns.SearchFilter{
		Status:     returns.Status(q.Get("status")),
		SearchTerm: q.Get("search"),
	}
	if v := q.Get("date_from"); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, "Invalid value for 'date_from' parameter"
		}
		filter.DateFrom = &from
	}
	if v := q.Get("date_to"); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, "Invalid value for 'date_to' parameter"
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &to
	}
	return filter, ""
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	filter, msg := parseFilter(r)
	if msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	page := 1
	perPage := 20
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			respondMessage(w, http.StatusBadRequest, "Invalid value for 'page' parameter")
			return
		}
	}
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		var err error
		perPage, err = strconv.Atoi(perPageStr)
		if err != nil || perPage <= 0 {
			respondMessage(w, http.StatusBadRequest, "Invalid value for 'per_page' parameter")
			return
		}
	}

	result, err := s.service.Search(r.Context(), filter, page, perPage)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, result)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.Statistics(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, stats)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	filter, msg := parseFilter(r)
	if msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	rows, err := s.service.ExportRows(r.Context(), filter)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{
		"columns": returns.ExportHeader,
		"rows":    rows,
	})
}

func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, returns.AvailableStatuses())
}

func (s *Server) handleAdminGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	tracking, err := s.service.Track(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, tracking)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	if err := s.service.Delete(r.Context(), id); err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, returns.Result{Success: true, Message: "Return deleted"})
}

type noteRequest struct {
	Note string `json:"note"`
}

// transitionHandler decodes the body into T and applies one lifecycle step.
func transitionHandler[T any](s *Server, message string, apply func(r *http.Request, id int64, body T) (*returns.Return, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "Invalid return ID")
			return
		}

		var body T
		if err := decodeBody(r, &body); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		ret, err := apply(r, id, body)
		if err != nil {
			s.respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, returns.Result{Success: true, Message: message, Data: ret})
	}
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	transitionHandler(s, "Return approved", func(r *http.Request, id int64, body noteRequest) (*returns.Return, error) {
		return s.service.Approve(r.Context(), id, body.Note)
	})(w, r)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	type rejectRequest struct {
		Reason string `json:"reason"`
		Note   string `json:"note"`
	}
	transitionHandler(s, "Return rejected", func(r *http.Request, id int64, body rejectRequest) (*returns.Return, error) {
		return s.service.Reject(r.Context(), id, body.Reason, body.Note)
	})(w, r)
}

func (s *Server) handleShip(w http.ResponseWriter, r *http.Request) {
	type shipRequest struct {
		TrackingNumber string `json:"tracking_number"`
		Carrier        string `json:"carrier"`
	}
	transitionHandler(s, "Return marked as shipped", func(r *http.Request, id int64, body shipRequest) (*returns.Return, error) {
		return s.service.MarkShipped(r.Context(), id, body.TrackingNumber, body.Carrier)
	})(w, r)
}

func (s *Server) handleReceive(w http.ResponseWriter, r *http.Request) {
	type receiveRequest struct {
		Items        []returns.ItemInspection `json:"items"`
		QualityNotes string                   `json:"quality_notes"`
	}
	transitionHandler(s, "Return marked as received", func(r *http.Request, id int64, body receiveRequest) (*returns.Return, error) {
		return s.service.MarkReceived(r.Context(), id, body.Items, body.QualityNotes)
	})(w, r)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	transitionHandler(s, "Return cancelled", func(r *http.Request, id int64, body noteRequest) (*returns.Return, error) {
		return s.service.Cancel(r.Context(), id, body.Note)
	})(w, r)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	transitionHandler(s, "Return completed", func(r *http.Request, id int64, body noteRequest) (*returns.Return, error) {
		return s.service.Complete(r.Context(), id, body.Note)
	})(w, r)
}

func (s *Server) handleRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	var req returns.RefundRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.ProcessRefund(r.Context(), id, req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, returns.Result{Success: true, Message: "Refund processed successfully", Data: result})
}

func (s *Server) handleRefundCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	check, err := s.service.CheckRefund(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, check)
}
