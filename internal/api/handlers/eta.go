package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"fleet-eta-service/internal/api/dto"
	"fleet-eta-service/internal/clock"
	"fleet-eta-service/internal/metrics"
	"fleet-eta-service/internal/ports"
	"fleet-eta-service/internal/services"
)

// EtaHandler exposes the compute-itinerary operation. It normalizes
// the request, runs the resolution pipeline, and maps results or
// taxonomy errors to the wire. When the request names a chat, a
// formatted reply is delivered out of band.
type EtaHandler struct {
	Deps     services.Deps
	Notifier ports.Notifier
	Clock    clock.Clock
	Metrics  *metrics.Metrics
}

func (h *EtaHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}

	var req dto.EtaRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, string(services.KindInvalidRequest), "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, string(services.KindInvalidRequest), "body must contain only one JSON object")
		return
	}

	stops := make([]services.StopInput, 0, len(req.Destinations))
	for _, d := range req.Destinations {
		stops = append(stops, services.StopInput{Address: d.Address, City: d.City, State: d.State})
	}

	svcReq := services.Request{
		Query:       req.Query,
		VehicleRef:  req.TruckNo,
		City:        req.City,
		State:       req.State,
		OriginCity:  req.OriginCity,
		OriginState: req.OriginState,
		Stops:       stops,
	}

	result, err := services.ComputeItinerary(r.Context(), h.Deps, svcReq, h.Clock.Now())
	if err != nil {
		kind, detail := services.Classify(err)
		if h.Metrics != nil {
			h.Metrics.RequestFailures.WithLabelValues(string(kind)).Inc()
		}
		if kind == services.KindInternal {
			log.Printf("compute itinerary failed: %v", err)
		}

		// Chat callers get the detail string verbatim.
		h.notify(req.ChatID, detail)
		writeError(w, r, services.HTTPStatus(kind), string(kind), detail)
		return
	}

	h.notify(req.ChatID, services.FormatReply(result))
	writeJSON(w, r, http.StatusOK, dto.FromResult(result))
}

// notify sends a chat reply without blocking the response. Failures
// are logged, never surfaced.
func (h *EtaHandler) notify(chatID int64, text string) {
	if h.Notifier == nil || chatID == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := h.Notifier.SendMessage(ctx, chatID, text); err != nil {
			log.Printf("chat notify failed: chat_id=%d err=%v", chatID, err)
		}
	}()
}
