// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/utils"
	"github.com/MKhiriev/snapback/models"
	"github.com/go-chi/chi/v5"
)

const (
	paramReturnFilesHash = "returnFilesHash"
	paramClockRangeMin   = "filesHashClockRangeMin"
	paramClockRangeMax   = "filesHashClockRangeMax"
)

// getClockStatus serves GET /users/clock_status/{wallet}.
//
// Query parameters:
//   - returnFilesHash: include data.filesHash;
//   - filesHashClockRangeMin, filesHashClockRangeMax: restrict the hash to
//     min <= clock < max. Either bound may be omitted.
func (h *Handler) getClockStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := parseClockStatusQuery(chi.URLParam(r, "wallet"), r.URL.Query())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getClockStatus").Msg("invalid query parameters")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	status, err := h.services.ClockStatusService.GetClockStatus(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getClockStatus").Msg("error getting clock status")
		http.Error(w, "error getting clock status", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ClockStatusResponse{Data: status}, http.StatusOK)
}

func parseClockStatusQuery(wallet string, values url.Values) (models.ClockStatusQuery, error) {
	query := models.ClockStatusQuery{Wallet: wallet}

	if raw := values.Get(paramReturnFilesHash); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return models.ClockStatusQuery{}, fmt.Errorf("%w: %s", ErrInvalidQueryParam, paramReturnFilesHash)
		}
		query.ReturnFilesHash = b
	}

	rawMin, rawMax := values.Get(paramClockRangeMin), values.Get(paramClockRangeMax)
	if rawMin == "" && rawMax == "" {
		return query, nil
	}

	rng := &models.RangeDigestQuery{Wallet: wallet}
	var err error
	if rawMin != "" {
		if rng.ClockMin, err = strconv.ParseInt(rawMin, 10, 64); err != nil {
			return models.ClockStatusQuery{}, fmt.Errorf("%w: %s", ErrInvalidQueryParam, paramClockRangeMin)
		}
	}
	if rawMax != "" {
		if rng.ClockMax, err = strconv.ParseInt(rawMax, 10, 64); err != nil {
			return models.ClockStatusQuery{}, fmt.Errorf("%w: %s", ErrInvalidQueryParam, paramClockRangeMax)
		}
	}
	query.Range = rng

	return query, nil
}
