package quote_duration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	findSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_available_slots"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
)

type fakeQuoter struct {
	got []string
	err error
}

func (f *fakeQuoter) QuoteDuration(_ context.Context, ids []string) (*findSlots.DurationQuote, error) {
	f.got = ids
	if f.err != nil {
		return nil, f.err
	}
	return &findSlots.DurationQuote{TotalMinutes: 100, BufferMinutes: 10}, nil
}

func do(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/durations", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	q := &fakeQuoter{}
	rec := do(NewHandler(q, logger.Nop()), `{"serviceIds":["s1","s4"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, QuoteResponse{TotalMinutes: 100, BufferMinutes: 10}, resp)
	assert.Equal(t, []string{"s1", "s4"}, q.got)
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&fakeQuoter{}, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, do(h, `{"serviceIds":`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, `{"unknown":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, `{"serviceIds":["s1",""]}`).Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := do(NewHandler(&fakeQuoter{err: errors.New("boom")}, logger.Nop()), `{"serviceIds":["s1"]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
