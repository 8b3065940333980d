package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpAdapter "github.com/shlokkku/Ageis-AI/pkg/adapters/http"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPipeline struct {
	answer *domain.Answer
	err    error
}

func (s stubPipeline) Ask(_ context.Context, q domain.Query) (*domain.Answer, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.answer, s.err
}

func postQuery(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/query", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleQuery_Success(t *testing.T) {
	handler := httpAdapter.NewHandler(stubPipeline{
		answer: &domain.Answer{
			Text:       "Your risk score is 0.42.",
			Provenance: domain.ProvenanceRecordData,
		},
	}, nil, nil)

	rec := postQuery(t, handler, httpAdapter.QueryRequest{Text: "What's my risk score?", Identity: "user-1"})

	require.Equal(t, http.StatusOK, rec.Code)

	var ans domain.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ans))
	assert.Equal(t, "Your risk score is 0.42.", ans.Text)
	assert.Equal(t, domain.ProvenanceRecordData, ans.Provenance)
}

func TestHandleQuery_MalformedInput(t *testing.T) {
	handler := httpAdapter.NewHandler(stubPipeline{}, nil, nil)

	rec := postQuery(t, handler, httpAdapter.QueryRequest{Text: "", Identity: "user-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postQuery(t, handler, httpAdapter.QueryRequest{Text: "hello risk", Identity: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleQuery_ProtocolViolationIsInternal(t *testing.T) {
	handler := httpAdapter.NewHandler(stubPipeline{
		err: domain.NewProtocolViolation("visualizer", "invoked twice for one query"),
	}, nil, nil)

	rec := postQuery(t, handler, httpAdapter.QueryRequest{Text: "chart my risk", Identity: "user-1"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp httpAdapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Error, "visualizer", "internal details stay internal")
}

func TestHandleHealth(t *testing.T) {
	handler := httpAdapter.NewHandler(stubPipeline{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	handler := httpAdapter.NewHandler(stubPipeline{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
