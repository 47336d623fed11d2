package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"slotbook/internal/domain"
	"slotbook/internal/observability/requestid"
	"slotbook/internal/service"
	"slotbook/internal/service/booking"
	"slotbook/internal/store"
)

type handler struct {
	ledger   ledgerService
	bookings bookingService
	log      *slog.Logger
}

type slotJSON struct {
	Day  *int `json:"day"`
	Time *int `json:"time"`
}

type declareRequest struct {
	WeekSchedule []slotJSON `json:"week_schedule"`
}

type reserveRequest struct {
	ProviderID *int64     `json:"provider_id"`
	LocationID *int64     `json:"location_id"`
	TimeSlots  []slotJSON `json:"time_slots"`
}

type cancelRequest struct {
	AppointmentID     string `json:"appointment_id"`
	AppointmentHashID string `json:"appointment_hash_id"`
}

type scheduleSlotJSON struct {
	ID         int64 `json:"id"`
	ProviderID int64 `json:"provider_id"`
	Day        int   `json:"day"`
	Time       int   `json:"time"`
}

func (h *handler) listLocations(w http.ResponseWriter, r *http.Request) {
	providerID, ok := int64Param(w, r, "providerID")
	if !ok {
		return
	}
	locs, err := h.ledger.ListLocations(r.Context(), providerID)
	if err != nil {
		h.writeError(w, r, err, "No locations found for given provider.")
		return
	}
	writeJSON(w, http.StatusOK, locs)
}

func (h *handler) listSchedule(w http.ResponseWriter, r *http.Request) {
	providerID, ok := int64Param(w, r, "providerID")
	if !ok {
		return
	}
	slots, err := h.ledger.ListSlots(r.Context(), providerID)
	if err != nil {
		h.writeError(w, r, err, "Schedule not found")
		return
	}
	out := make([]scheduleSlotJSON, 0, len(slots))
	for _, s := range slots {
		out = append(out, scheduleSlotJSON{ID: s.ID, ProviderID: s.ProviderID, Day: int(s.Day), Time: int(s.Segment)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) declareSchedule(w http.ResponseWriter, r *http.Request) {
	providerID, ok := int64Param(w, r, "providerID")
	if !ok {
		return
	}
	var req declareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	slots, ok := toSlotIndexes(req.WeekSchedule)
	if !ok {
		writeErrorDetail(w, http.StatusBadRequest, "Missing required field")
		return
	}

	created, err := h.ledger.DeclareSlots(r.Context(), providerID, slots)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	ids := make([]int64, 0, len(created))
	for _, s := range created {
		ids = append(ids, s.ID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": ids})
}

func (h *handler) revokeSlot(w http.ResponseWriter, r *http.Request) {
	providerID, ok := int64Param(w, r, "providerID")
	if !ok {
		return
	}
	slot, ok := slotParams(w, r)
	if !ok {
		return
	}
	if err := h.ledger.RevokeSlot(r.Context(), providerID, slot); err != nil {
		h.writeError(w, r, err, "Time slot could not be deleted from provider's schedule.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *handler) isBookable(w http.ResponseWriter, r *http.Request) {
	providerID, ok := int64Param(w, r, "providerID")
	if !ok {
		return
	}
	locationID, ok := int64Param(w, r, "locationID")
	if !ok {
		return
	}
	slot, ok := slotParams(w, r)
	if !ok {
		return
	}
	bookable, err := h.ledger.IsBookable(r.Context(), providerID, locationID, slot)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"bookable": bookable})
}

func (h *handler) reserve(w http.ResponseWriter, r *http.Request) {
	var req reserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	slots, ok := toSlotIndexes(req.TimeSlots)
	if req.ProviderID == nil || req.LocationID == nil || !ok {
		writeErrorDetail(w, http.StatusBadRequest, "Missing required field")
		return
	}

	id, err := h.bookings.Reserve(r.Context(), booking.ReserveInput{
		ProviderID: *req.ProviderID,
		LocationID: *req.LocationID,
		Slots:      slots,
	})
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"appointment_id": id})
}

func (h *handler) cancel(w http.ResponseWriter, r *http.Request) {
	h.cancelID(w, r, chi.URLParam(r, "appointmentID"))
}

// cancelFromBody accepts the identifier in a JSON body for clients that
// cannot put it in the path.
func (h *handler) cancelFromBody(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	id := req.AppointmentID
	if id == "" {
		id = req.AppointmentHashID
	}
	if strings.TrimSpace(id) == "" {
		writeErrorDetail(w, http.StatusBadRequest, "Missing required field")
		return
	}
	h.cancelID(w, r, id)
}

func (h *handler) cancelID(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.bookings.Cancel(r.Context(), id); err != nil {
		h.writeError(w, r, err, "Failed to delete appointment.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *handler) getAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "appointmentID")
	view, err := h.bookings.GetAppointment(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "Appointment not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"appointment_id": id, "appointment": view})
}

func (h *handler) listAppointments(w http.ResponseWriter, r *http.Request) {
	providerID, ok := int64Param(w, r, "providerID")
	if !ok {
		return
	}
	views, err := h.bookings.ListAppointments(r.Context(), providerID)
	if err != nil {
		h.writeError(w, r, err, "Appointments not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"appointments": views})
}

// writeError maps service and store errors onto HTTP statuses. notFound
// overrides the default 404 detail.
func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeErrorDetail(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, store.ErrNotFound):
		if notFound == "" {
			notFound = "Not found"
		}
		writeErrorDetail(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrConflict):
		writeErrorDetail(w, http.StatusConflict, "One or more of those time slots is already taken. Pick a different slot.")
	case errors.Is(err, store.ErrDuplicateSlot):
		writeErrorDetail(w, http.StatusConflict, "That time slot is already on the schedule.")
	case errors.Is(err, store.ErrSlotInUse):
		writeErrorDetail(w, http.StatusConflict, "That time slot is booked. Cancel the appointment first.")
	default:
		requestid.Logger(r.Context(), h.log).Error("request failed",
			slog.Any("err", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeErrorDetail(w, http.StatusInternalServerError, "internal error")
	}
}

func toSlotIndexes(in []slotJSON) ([]domain.SlotIndex, bool) {
	if len(in) == 0 {
		return nil, false
	}
	out := make([]domain.SlotIndex, 0, len(in))
	for _, s := range in {
		if s.Day == nil || s.Time == nil {
			return nil, false
		}
		out = append(out, domain.SlotIndex{Day: *s.Day, Segment: *s.Time})
	}
	return out, true
}

func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return v, true
}

func slotParams(w http.ResponseWriter, r *http.Request) (domain.SlotIndex, bool) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "day must be an integer")
		return domain.SlotIndex{}, false
	}
	segment, err := strconv.Atoi(chi.URLParam(r, "segment"))
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "time must be an integer")
		return domain.SlotIndex{}, false
	}
	return domain.SlotIndex{Day: day, Segment: segment}, true
}

func writeErrorDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"error_detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
