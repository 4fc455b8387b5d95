// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/fleetwatch/internal/cache"
	"github.com/tomtom215/fleetwatch/internal/logging"
	"github.com/tomtom215/fleetwatch/internal/models"
	"github.com/tomtom215/fleetwatch/internal/ranking"
	"github.com/tomtom215/fleetwatch/internal/validation"
)

// RankingsResponse is the data of POST /api/v1/rankings.
type RankingsResponse struct {
	GroupBy     models.GroupBy      `json:"group_by"`
	Rankings    models.RankingsData `json:"rankings"`
	ByAlarmType models.RankingsData `json:"by_alarm_type"`
	Stats       models.RankingStats `json:"stats"`
	Total       int                 `json:"total_events"`
	Filtered    int                 `json:"filtered_events"`
	Excluded    int                 `json:"excluded_events"`
}

// Rankings filters the posted report and ranks it by the requested dimension.
// Identical requests are served from the TTL cache.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RankingsRequest
	if err := decodeBody(w, r, h.maxBodyBytes, &req); err != nil {
		h.decodeError(rw, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.Validation(verr)
		return
	}

	groupBy, err := models.ParseGroupBy(req.GroupBy)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	criteria, err := req.Filter.criteria(h.filter.Location)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	var key string
	if h.rankings != nil {
		key = cache.GenerateKey("rankings", &req)
		if cached, ok := h.rankings.Get(key); ok {
			rw.SuccessWithMeta(cached, &APIMeta{Cached: true})
			return
		}
	}

	res := h.filter.Apply(req.Report.Events, criteria)
	resp := RankingsResponse{
		GroupBy:     groupBy,
		Rankings:    ranking.Aggregate(res.Events, groupBy),
		ByAlarmType: ranking.AggregateByAlarmType(res.Events, groupBy),
		Total:       res.Total,
		Filtered:    len(res.Events),
		Excluded:    res.Excluded,
	}
	resp.Stats = ranking.Stats(resp.Rankings.All)

	logging.CtxDebug(r.Context()).
		Str("group_by", string(groupBy)).
		Int("filtered", resp.Filtered).
		Int("ranked", len(resp.Rankings.All)).
		Msg("Rankings computed")

	if h.rankings != nil {
		h.rankings.Set(key, resp)
	}
	rw.Success(resp)
}

func (h *Handler) decodeError(rw *ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		rw.Error(http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "Request body too large")
		return
	}
	rw.BadRequest(err.Error())
}
