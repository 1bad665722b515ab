//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/attachment"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

type ReturnService interface {
	CheckEligibility(ctx context.Context, orderID int64) (*returns.Eligibility, error)
	CreateReturn(ctx context.Context, req returns.ReturnRequest) (*returns.Return, error)
	Get(ctx context.Context, id int64) (*returns.Return, error)
	Track(ctx context.Context, id int64) (*returns.Tracking, error)
	LabelData(ctx context.Context, id int64) (*returns.LabelData, error)
	ListByContact(ctx context.Context, contactID int64) ([]*returns.Return, error)
	ReturnReasons() []string

	Search(ctx context.Context, filter returns.SearchFilter, page, perPage int) (*returns.SearchResult, error)
	Statistics(ctx context.Context) (returns.Statistics, error)
	ExportRows(ctx context.Context, filter returns.SearchFilter) ([]returns.ExportRow, error)
	Delete(ctx context.Context, id int64) error

	Approve(ctx context.Context, id int64, note string) (*returns.Return, error)
	Reject(ctx context.Context, id int64, reason, note string) (*returns.Return, error)
	MarkShipped(ctx context.Context, id int64, trackingNumber, carrier string) (*returns.Return, error)
	MarkReceived(ctx context.Context, id int64, inspections []returns.ItemInspection, qualityNotes string) (*returns.Return, error)
	Cancel(ctx context.Context, id int64, note string) (*returns.Return, error)
	Complete(ctx context.Context, id int64, note string) (*returns.Return, error)
	ProcessRefund(ctx context.Context, id int64, req returns.RefundRequest) (*returns.RefundResult, error)
	CheckRefund(ctx context.Context, id int64) (returns.RefundCheck, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, data []byte) (*attachment.Image, error)
}

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxImageSize int64
	// UploadDir, when set, is served under UploadPath.
	UploadDir  string
	UploadPath string
}

type Server struct {
	service      ReturnService
	uploader     ImageUploader
	logger       *zap.Logger
	config       Config
	server       *http.Server
	AuditManager *AuditManager
}

func New(service ReturnService, uploader ImageUploader, auditManager *AuditManager, config Config, logger *zap.Logger) *Server {
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 10 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 10 * time.Second
	}
	if config.MaxImageSize == 0 {
		config.MaxImageSize = 5 << 20
	}
	return &Server{
		service:      service,
		uploader:     uploader,
		logger:       logger,
		config:       config,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Routes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", s.config.Port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.logger.Info("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.recoveryMiddleware, s.metricsMiddleware, s.auditLogMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/orders/{orderId:[0-9]+}/eligibility", s.handleEligibility).Methods(http.MethodGet)
	router.HandleFunc("/returns", s.handleCreateReturn).Methods(http.MethodPost)
	router.HandleFunc("/returns/reasons", s.handleReasons).Methods(http.MethodGet)
	router.HandleFunc("/returns/images", s.handleUploadImage).Methods(http.MethodPost)
	router.HandleFunc("/returns/{id:[0-9]+}/status", s.handleReturnStatus).Methods(http.MethodGet)
	router.HandleFunc("/returns/{id:[0-9]+}/track", s.handleTrack).Methods(http.MethodGet)
	router.HandleFunc("/returns/{id:[0-9]+}/label", s.handleLabel).Methods(http.MethodGet)
	router.HandleFunc("/contacts/{contactId:[0-9]+}/returns", s.handleContactReturns).Methods(http.MethodGet)

	admin := router.PathPrefix("/admin/returns").Subrouter()
	admin.HandleFunc("", s.handleSearch).Methods(http.MethodGet)
	admin.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	admin.HandleFunc("/export", s.handleExport).Methods(http.MethodGet)
	admin.HandleFunc("/statuses", s.handleStatuses).Methods(http.MethodGet)
	admin.HandleFunc("/{id:[0-9]+}", s.handleAdminGet).Methods(http.MethodGet)
	admin.HandleFunc("/{id:[0-9]+}", s.handleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/{id:[0-9]+}/approve", s.handleApprove).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}/reject", s.handleReject).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}/ship", s.handleShip).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}/receive", s.handleReceive).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}/cancel", s.handleCancel).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}/complete", s.handleComplete).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}/refund", s.handleRefund).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}/refund", s.handleRefundCheck).Methods(http.MethodGet)

	if s.config.UploadDir != "" && strings.HasPrefix(s.config.UploadPath, "/") {
		prefix := strings.TrimRight(s.config.UploadPath, "/") + "/"
		router.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(http.Dir(s.config.UploadDir)))).Methods(http.MethodGet)
	}

	return router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondOK(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, returns.OK(data))
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, returns.Result{Message: message})
}

// respondError writes the engine error envelope with a status derived from
// its kind.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var e *returns.Error
	if !errors.As(err, &e) {
		s.logger.Error("unclassified error", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, statusForKind(e.Kind), returns.Failure(e))
}

func statusForKind(kind returns.Kind) int {
	switch kind {
	case returns.KindNotFound:
		return http.StatusNotFound
	case returns.KindValidationFailed:
		return http.StatusUnprocessableEntity
	case returns.KindIllegalTransition:
		return http.StatusConflict
	case returns.KindCollaboratorFailure:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeBody accepts an empty body as the zero value.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
