package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/snapback/internal/service"
	"github.com/MKhiriev/snapback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClockStatus(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		status    models.ReplicaObservation
		err       error
		wantCode  int
		wantBody  string
		wantQuery models.ClockStatusQuery
	}{
		{
			name:      "clock only",
			target:    "/users/clock_status/0xabc",
			status:    models.ReplicaObservation{Clock: 7},
			wantCode:  http.StatusOK,
			wantBody:  `{"data":{"clockValue":7}}`,
			wantQuery: models.ClockStatusQuery{Wallet: "0xabc"},
		},
		{
			name:      "with files hash",
			target:    "/users/clock_status/0xabc?returnFilesHash=true",
			status:    models.ReplicaObservation{Clock: 7, FilesHash: models.NewFilesHash("d41d8cd9")},
			wantCode:  http.StatusOK,
			wantBody:  `{"data":{"clockValue":7,"filesHash":"d41d8cd9"}}`,
			wantQuery: models.ClockStatusQuery{Wallet: "0xabc", ReturnFilesHash: true},
		},
		{
			name:      "unknown wallet",
			target:    "/users/clock_status/0xnobody?returnFilesHash=true",
			status:    models.ReplicaObservation{Clock: -1, FilesHash: models.NullFilesHash()},
			wantCode:  http.StatusOK,
			wantBody:  `{"data":{"clockValue":-1,"filesHash":null}}`,
			wantQuery: models.ClockStatusQuery{Wallet: "0xnobody", ReturnFilesHash: true},
		},
		{
			name:     "with range",
			target:   "/users/clock_status/0xabc?returnFilesHash=1&filesHashClockRangeMin=2&filesHashClockRangeMax=5",
			status:   models.ReplicaObservation{Clock: 7, FilesHash: models.NewFilesHash("range")},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"clockValue":7,"filesHash":"range"}}`,
			wantQuery: models.ClockStatusQuery{
				Wallet:          "0xabc",
				ReturnFilesHash: true,
				Range:           &models.RangeDigestQuery{Wallet: "0xabc", ClockMin: 2, ClockMax: 5},
			},
		},
		{
			name:     "invalid range from service",
			target:   "/users/clock_status/0xabc?filesHashClockRangeMin=5&filesHashClockRangeMax=2",
			err:      fmt.Errorf("%w: bad range", service.ErrInvalidInput),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "store failure",
			target:   "/users/clock_status/0xabc",
			err:      fmt.Errorf("%w: db down", service.ErrLookupFailure),
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "unparsable flag",
			target:   "/users/clock_status/0xabc?returnFilesHash=maybe",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStubs()
			s.clockStatus.status, s.clockStatus.err = tt.status, tt.err
			router := newTestRouter(t, s, nil)

			rec := do(t, router, http.MethodGet, tt.target, "")

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, tt.wantQuery, s.clockStatus.query)
			}
		})
	}
}

func Test_parseClockStatusQuery(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		want    models.ClockStatusQuery
		wantErr bool
	}{
		{
			name: "empty",
			want: models.ClockStatusQuery{Wallet: "w"},
		},
		{
			name:   "false flag",
			values: url.Values{paramReturnFilesHash: {"false"}},
			want:   models.ClockStatusQuery{Wallet: "w"},
		},
		{
			name:   "min only",
			values: url.Values{paramClockRangeMin: {"3"}},
			want:   models.ClockStatusQuery{Wallet: "w", Range: &models.RangeDigestQuery{Wallet: "w", ClockMin: 3}},
		},
		{
			name:   "max only",
			values: url.Values{paramClockRangeMax: {"9"}},
			want:   models.ClockStatusQuery{Wallet: "w", Range: &models.RangeDigestQuery{Wallet: "w", ClockMax: 9}},
		},
		{name: "bad flag", values: url.Values{paramReturnFilesHash: {"yes please"}}, wantErr: true},
		{name: "bad min", values: url.Values{paramClockRangeMin: {"one"}}, wantErr: true},
		{name: "bad max", values: url.Values{paramClockRangeMax: {"1.5"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClockStatusQuery("w", tt.values)

			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidQueryParam))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
