// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package api

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/tomtom215/fleetwatch/internal/export"
	"github.com/tomtom215/fleetwatch/internal/logging"
	"github.com/tomtom215/fleetwatch/internal/models"
	"github.com/tomtom215/fleetwatch/internal/validation"
)

// ExportRankings renders the rankings document as a PDF download.
func (h *Handler) ExportRankings(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, export.KindRankings)
}

// ExportReport renders the events report as a PDF download.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, export.KindEvents)
}

func (h *Handler) serveExport(w http.ResponseWriter, r *http.Request, kind export.Kind) {
	rw := NewResponseWriter(w, r)

	var req ExportRequest
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

	job := export.NewJob(kind, req.Report, criteria, groupBy, req.Company)
	doc, err := h.orchestrator.Run(r.Context(), job)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; nobody is left to read a response.
			return
		}
		rw.Error(http.StatusServiceUnavailable, ErrCodeExportFailed, "Export could not be completed")
		return
	}

	body, err := h.writer.Render(doc)
	if err != nil {
		logging.CtxErr(r.Context(), err).Str("job_id", job.ID).Msg("PDF rendering failed")
		rw.InternalError("Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Export-Pages", strconv.Itoa(len(doc.Pages)))
	w.Header().Set("X-Export-Placeholders", strconv.Itoa(doc.Placeholders))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.CtxErr(r.Context(), err).Str("job_id", job.ID).Msg("Failed to write PDF response")
	}
}
