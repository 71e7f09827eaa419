package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-segment-reservation/internal/repository"
)

func TestWriteEngineError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"station not on route", repository.ErrStationNotOnRoute, http.StatusBadRequest},
		{"invalid route", repository.ErrInvalidRoute, http.StatusUnprocessableEntity},
		{"seat race lost", repository.ErrSeatNoLongerAvailable, http.StatusConflict},
		{"run not found", repository.ErrRunNotFound, http.StatusNotFound},
		{"seat not found", repository.ErrSeatNotFound, http.StatusNotFound},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if err := writeEngineError(c, tc.err); err != nil {
				t.Fatalf("writeEngineError: %v", err)
			}
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
