package server

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/attachment"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
	mock_server "gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/server/mocks"
)

func newTestServer(t *testing.T) (http.Handler, *mock_server.MockReturnService, *mock_server.MockImageUploader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mock_server.NewMockReturnService(ctrl)
	mockUploader := mock_server.NewMockImageUploader(ctrl)

	audit := NewAuditManager(1, 10, 10*time.Millisecond, NewLogSink(zap.NewNop()), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	audit.Start(ctx)
	t.Cleanup(func() {
		cancel()
		audit.Shutdown(context.Background())
	})

	s := New(mockService, mockUploader, audit, Config{Port: "0"}, zap.NewNop())
	return s.Routes(), mockService, mockUploader
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandleCreateReturn(t *testing.T) {
	h, mockService, _ := newTestServer(t)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "created",
			body: `{"order_id":10,"contact_id":5,"customer_email":"a@b.co","customer_name":"Ann","return_reason":"Damaged"}`,
			setupMocks: func() {
				mockService.EXPECT().
					CreateReturn(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req returns.ReturnRequest) (*returns.Return, error) {
						assert.Equal(t, int64(10), req.OrderID)
						assert.Equal(t, "Damaged", req.ReturnReason)
						return &returns.Return{ID: 1, ReturnNumber: "RET-20250101-0001", Status: returns.StatusPending}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid body",
			body:           `{"order_id":`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Invalid request body"}`,
		},
		{
			name: "validation failed",
			body: `{"order_id":10}`,
			setupMocks: func() {
				mockService.EXPECT().
					CreateReturn(gomock.Any(), gomock.Any()).
					Return(nil, returns.ValidationFailed("Validation failed", map[string]string{"customer_email": "Customer email is required"}))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"success":false,"message":"Validation failed","errors":{"customer_email":"Customer email is required"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			rr := doRequest(h, http.MethodPost, "/returns", tc.body)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestErrorKindsMapToStatus(t *testing.T) {
	h, mockService, _ := newTestServer(t)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"not found", returns.NotFound("Return not found"), http.StatusNotFound},
		{"illegal transition", returns.IllegalTransition("Only pending returns can be approved"), http.StatusConflict},
		{"collaborator failure", returns.CollaboratorFailure("Failed to update return", errors.New("db")), http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService.EXPECT().Approve(gomock.Any(), int64(3), "ok").Return(nil, tc.err)

			rr := doRequest(h, http.MethodPost, "/admin/returns/3/approve", `{"note":"ok"}`)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestAdminTransitions(t *testing.T) {
	h, mockService, _ := newTestServer(t)
	ret := &returns.Return{ID: 4, Status: returns.StatusRejected}

	t.Run("reject", func(t *testing.T) {
		mockService.EXPECT().Reject(gomock.Any(), int64(4), "Worn", "").Return(ret, nil)
		rr := doRequest(h, http.MethodPost, "/admin/returns/4/reject", `{"reason":"Worn"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"message":"Return rejected"`)
	})

	t.Run("ship", func(t *testing.T) {
		mockService.EXPECT().MarkShipped(gomock.Any(), int64(4), "TRK1", "DHL").Return(ret, nil)
		rr := doRequest(h, http.MethodPost, "/admin/returns/4/ship", `{"tracking_number":"TRK1","carrier":"DHL"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("receive", func(t *testing.T) {
		mockService.EXPECT().
			MarkReceived(gomock.Any(), int64(4), []returns.ItemInspection{{ItemID: 9, Condition: returns.ConditionDamaged}}, "box torn").
			Return(ret, nil)
		rr := doRequest(h, http.MethodPost, "/admin/returns/4/receive",
			`{"items":[{"item_id":9,"condition":"damaged"}],"quality_notes":"box torn"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("cancel without body", func(t *testing.T) {
		mockService.EXPECT().Cancel(gomock.Any(), int64(4), "").Return(ret, nil)
		rr := doRequest(h, http.MethodPost, "/admin/returns/4/cancel", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("refund", func(t *testing.T) {
		amount := decimal.RequireFromString("10.50")
		mockService.EXPECT().
			ProcessRefund(gomock.Any(), int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req returns.RefundRequest) (*returns.RefundResult, error) {
				assert.Equal(t, returns.RefundStoreCredit, req.Method)
				require.NotNil(t, req.Amount)
				assert.True(t, amount.Equal(*req.Amount))
				return &returns.RefundResult{RefundID: "SC-1", Method: req.Method, Amount: *req.Amount}, nil
			})
		rr := doRequest(h, http.MethodPost, "/admin/returns/4/refund", `{"method":"store_credit","amount":"10.50"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"refund_id":"SC-1"`)
	})

	t.Run("refund check", func(t *testing.T) {
		mockService.EXPECT().CheckRefund(gomock.Any(), int64(4)).Return(returns.RefundCheck{Reason: "Refund already processed"}, nil)
		rr := doRequest(h, http.MethodGet, "/admin/returns/4/refund", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"can_refund":false`)
	})
}

func TestHandleSearch(t *testing.T) {
	h, mockService, _ := newTestServer(t)

	t.Run("filters", func(t *testing.T) {
		mockService.EXPECT().
			Search(gomock.Any(), gomock.Any(), 2, 5).
			DoAndReturn(func(_ context.Context, f returns.SearchFilter, _, _ int) (*returns.SearchResult, error) {
				assert.Equal(t, returns.StatusPending, f.Status)
				assert.Equal(t, "ann", f.SearchTerm)
				require.NotNil(t, f.DateFrom)
				require.NotNil(t, f.DateTo)
				assert.Equal(t, 2025, f.DateFrom.Year())
				assert.Equal(t, 23, f.DateTo.Hour())
				return &returns.SearchResult{Page: 2, PerPage: 5}, nil
			})

		rr := doRequest(h, http.MethodGet, "/admin/returns?status=pending&search=ann&date_from=2025-01-01&date_to=2025-01-31&page=2&per_page=5", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("bad page", func(t *testing.T) {
		rr := doRequest(h, http.MethodGet, "/admin/returns?page=0", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		rr := doRequest(h, http.MethodGet, "/admin/returns?date_from=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCustomerReads(t *testing.T) {
	h, mockService, _ := newTestServer(t)

	t.Run("status", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), int64(8)).
			Return(&returns.Return{ID: 8, ReturnNumber: "RET-1", Status: returns.StatusShipped}, nil)
		rr := doRequest(h, http.MethodGet, "/returns/8/status", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status_label":"Shipped Back"`)
	})

	t.Run("eligibility", func(t *testing.T) {
		mockService.EXPECT().CheckEligibility(gomock.Any(), int64(12)).
			Return(&returns.Eligibility{
				Result:           returns.EligibilityResult{Message: "Return period has expired (max 14 days)"},
				ReturnPeriodDays: 14,
				PhotosRequired:   true,
			}, nil)
		rr := doRequest(h, http.MethodGet, "/orders/12/eligibility", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Return period has expired")
		assert.Contains(t, rr.Body.String(), `"return_period_days":14`)
		assert.Contains(t, rr.Body.String(), `"photos_required":true`)
	})

	t.Run("contact returns empty", func(t *testing.T) {
		mockService.EXPECT().ListByContact(gomock.Any(), int64(5)).Return(nil, nil)
		rr := doRequest(h, http.MethodGet, "/contacts/5/returns", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())
	})

	t.Run("reasons", func(t *testing.T) {
		mockService.EXPECT().ReturnReasons().Return([]string{"Damaged"})
		rr := doRequest(h, http.MethodGet, "/returns/reasons", "")
		assert.JSONEq(t, `{"success":true,"data":["Damaged"]}`, rr.Body.String())
	})

	t.Run("non numeric id is not routed", func(t *testing.T) {
		rr := doRequest(h, http.MethodGet, "/returns/abc/status", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleUploadImage(t *testing.T) {
	h, _, mockUploader := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mockUploader.EXPECT().Upload(gomock.Any(), []byte("\x89PNG\r\n\x1a\n")).
		Return(&attachment.Image{URL: "http://cdn/x.png", Key: "x.png", ContentType: "image/png", Size: 8}, nil)

	req := httptest.NewRequest(http.MethodPost, "/returns/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"url":"http://cdn/x.png"`)
}

func TestRecoveryMiddleware(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	h := s.recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/returns/1/status", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rr.Body.String())
}

func TestGetHandlerName(t *testing.T) {
	tests := []struct {
		method, path, handler, action string
	}{
		{http.MethodPost, "/returns", "handleCreateReturn", "create"},
		{http.MethodGet, "/returns/3/track", "handleTrack", "track"},
		{http.MethodGet, "/admin/returns", "handleSearch", "search"},
		{http.MethodDelete, "/admin/returns/3", "handleDelete", "delete"},
		{http.MethodPost, "/admin/returns/3/approve", "handleApprove", "approve"},
		{http.MethodGet, "/admin/returns/3/refund", "handleRefundCheck", "refund_check"},
		{http.MethodGet, "/orders/1/eligibility", "handleEligibility", "eligibility"},
		{http.MethodGet, "/nowhere", "unknown", "unknown"},
	}
	for _, tc := range tests {
		handler, action := getHandlerName(tc.path, tc.method)
		assert.Equal(t, tc.handler, handler, tc.path)
		assert.Equal(t, tc.action, action, tc.path)
	}
}
