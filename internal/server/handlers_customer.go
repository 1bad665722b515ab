package server

import (
	"io"
	"net/http"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

func (s *Server) handleEligibility(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "orderId")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	eligibility, err := s.service.CheckEligibility(r.Context(), orderID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, eligibility)
}

func (s *Server) handleCreateReturn(w http.ResponseWriter, r *http.Request) {
	var req returns.ReturnRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ret, err := s.service.CreateReturn(r.Context(), req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, returns.Result{
		Success: true,
		Message: "Return request submitted successfully",
		Data:    ret,
	})
}

func (s *Server) handleReasons(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, s.service.ReturnReasons())
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxImageSize+1<<20)
	file, _, err := r.FormFile("image")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Failed to read image")
		return
	}

	img, err := s.uploader.Upload(r.Context(), data)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusCreated, img)
}

func (s *Server) handleReturnStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	ret, err := s.service.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{
		"return_number": ret.ReturnNumber,
		"status":        ret.Status,
		"status_label":  ret.Status.Label(),
		"refund_status": ret.RefundStatus,
		"updated_at":    ret.UpdatedAt,
	})
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
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

func (s *Server) handleLabel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	label, err := s.service.LabelData(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, label)
}

func (s *Server) handleContactReturns(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathID(r, "contactId")
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	list, err := s.service.ListByContact(r.Context(), contactID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if list == nil {
		list = []*returns.Return{}
	}
	respondOK(w, http.StatusOK, list)
}
