package grpc

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"slotbook/internal/domain"
	slotbookv1 "slotbook/internal/gen/proto/slotbook/v1"
	"slotbook/internal/observability/requestid"
	"slotbook/internal/service"
	"slotbook/internal/service/booking"
	"slotbook/internal/store"
)

type BookingServer struct {
	slotbookv1.UnimplementedBookingServiceServer

	ledger   ledgerService
	bookings bookingService
	log      *slog.Logger
}

type ledgerService interface {
	DeclareSlots(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error)
	RevokeSlot(ctx context.Context, providerID int64, slot domain.SlotIndex) error
	ListSlots(ctx context.Context, providerID int64) ([]domain.ScheduleSlot, error)
	IsBookable(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error)
	ListLocations(ctx context.Context, providerID int64) ([]domain.Location, error)
}

type bookingService interface {
	Reserve(ctx context.Context, in booking.ReserveInput) (string, error)
	Cancel(ctx context.Context, appointmentID string) error
	ListAppointments(ctx context.Context, providerID int64) (map[string]domain.AppointmentView, error)
	GetAppointment(ctx context.Context, appointmentID string) (domain.AppointmentView, error)
}

func NewBookingServer(ledger ledgerService, bookings bookingService, log *slog.Logger) *BookingServer {
	if log == nil {
		log = slog.Default()
	}
	return &BookingServer{
		ledger:   ledger,
		bookings: bookings,
		log:      log.With(slog.String("component", "grpc.booking")),
	}
}

func (s *BookingServer) DeclareSlots(ctx context.Context, req *slotbookv1.DeclareSlotsRequest) (*slotbookv1.DeclareSlotsResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "DeclareSlots"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	slots, err := s.ledger.DeclareSlots(ctx, req.ProviderId, toSlotIndexes(req.WeekSchedule))
	if err != nil {
		return nil, s.fail(log, "slot declare failed", err, slog.Int64("provider_id", req.ProviderId))
	}

	log.Info("slots declared", slog.Int64("provider_id", req.ProviderId), slog.Int("count", len(slots)))
	return &slotbookv1.DeclareSlotsResponse{Slots: toProtoScheduleSlots(slots)}, nil
}

func (s *BookingServer) RevokeSlot(ctx context.Context, req *slotbookv1.RevokeSlotRequest) (*slotbookv1.RevokeSlotResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "RevokeSlot"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Slot == nil {
		log.Warn("invalid request", slog.String("reason", "missing_slot"), slog.Int64("provider_id", req.ProviderId))
		return nil, status.Error(codes.InvalidArgument, "slot is required")
	}

	slot := toSlotIndex(req.Slot)
	if err := s.ledger.RevokeSlot(ctx, req.ProviderId, slot); err != nil {
		return nil, s.fail(log, "slot revoke failed", err, slog.Int64("provider_id", req.ProviderId), slog.String("slot", slot.String()))
	}

	log.Info("slot revoked", slog.Int64("provider_id", req.ProviderId), slog.String("slot", slot.String()))
	return &slotbookv1.RevokeSlotResponse{}, nil
}

func (s *BookingServer) ListSlots(ctx context.Context, req *slotbookv1.ListSlotsRequest) (*slotbookv1.ListSlotsResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "ListSlots"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	slots, err := s.ledger.ListSlots(ctx, req.ProviderId)
	if err != nil {
		return nil, s.fail(log, "slots list failed", err, slog.Int64("provider_id", req.ProviderId))
	}

	log.Debug("slots listed", slog.Int64("provider_id", req.ProviderId), slog.Int("count", len(slots)))
	return &slotbookv1.ListSlotsResponse{Slots: toProtoScheduleSlots(slots)}, nil
}

func (s *BookingServer) IsBookable(ctx context.Context, req *slotbookv1.IsBookableRequest) (*slotbookv1.IsBookableResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "IsBookable"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Slot == nil {
		log.Warn("invalid request", slog.String("reason", "missing_slot"), slog.Int64("provider_id", req.ProviderId))
		return nil, status.Error(codes.InvalidArgument, "slot is required")
	}

	ok, err := s.ledger.IsBookable(ctx, req.ProviderId, req.LocationId, toSlotIndex(req.Slot))
	if err != nil {
		return nil, s.fail(log, "bookable check failed", err, slog.Int64("provider_id", req.ProviderId))
	}
	return &slotbookv1.IsBookableResponse{Bookable: ok}, nil
}

func (s *BookingServer) ListLocations(ctx context.Context, req *slotbookv1.ListLocationsRequest) (*slotbookv1.ListLocationsResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "ListLocations"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	locs, err := s.ledger.ListLocations(ctx, req.ProviderId)
	if err != nil {
		return nil, s.fail(log, "locations list failed", err, slog.Int64("provider_id", req.ProviderId))
	}
	return &slotbookv1.ListLocationsResponse{Locations: toProtoLocations(locs)}, nil
}

func (s *BookingServer) Reserve(ctx context.Context, req *slotbookv1.ReserveRequest) (*slotbookv1.ReserveResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "Reserve"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id, err := s.bookings.Reserve(ctx, booking.ReserveInput{
		ProviderID: req.ProviderId,
		LocationID: req.LocationId,
		Slots:      toSlotIndexes(req.TimeSlots),
	})
	if err != nil {
		return nil, s.fail(log, "appointment reserve failed", err,
			slog.Int64("provider_id", req.ProviderId),
			slog.Int64("location_id", req.LocationId),
		)
	}

	log.Info(
		"appointment reserved",
		slog.String("appointment_id", id),
		slog.Int64("provider_id", req.ProviderId),
		slog.Int64("location_id", req.LocationId),
		slog.Int("slots", len(req.TimeSlots)),
	)
	return &slotbookv1.ReserveResponse{AppointmentId: id}, nil
}

func (s *BookingServer) Cancel(ctx context.Context, req *slotbookv1.CancelRequest) (*slotbookv1.CancelResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "Cancel"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := s.bookings.Cancel(ctx, req.AppointmentId); err != nil {
		return nil, s.fail(log, "appointment cancel failed", err, slog.String("appointment_id", req.AppointmentId))
	}

	log.Info("appointment cancelled", slog.String("appointment_id", req.AppointmentId))
	return &slotbookv1.CancelResponse{}, nil
}

func (s *BookingServer) ListAppointments(ctx context.Context, req *slotbookv1.ListAppointmentsRequest) (*slotbookv1.ListAppointmentsResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "ListAppointments"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	views, err := s.bookings.ListAppointments(ctx, req.ProviderId)
	if err != nil {
		return nil, s.fail(log, "appointments list failed", err, slog.Int64("provider_id", req.ProviderId))
	}

	ids := make([]string, 0, len(views))
	for id := range views {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*slotbookv1.Appointment, 0, len(ids))
	for _, id := range ids {
		out = append(out, toProtoAppointment(id, views[id]))
	}

	log.Debug("appointments listed", slog.Int64("provider_id", req.ProviderId), slog.Int("count", len(out)))
	return &slotbookv1.ListAppointmentsResponse{Appointments: out}, nil
}

func (s *BookingServer) GetAppointment(ctx context.Context, req *slotbookv1.GetAppointmentRequest) (*slotbookv1.GetAppointmentResponse, error) {
	log := requestid.Logger(ctx, s.log).With(slog.String("rpc", "GetAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	view, err := s.bookings.GetAppointment(ctx, req.AppointmentId)
	if err != nil {
		return nil, s.fail(log, "appointment get failed", err, slog.String("appointment_id", req.AppointmentId))
	}
	return &slotbookv1.GetAppointmentResponse{Appointment: toProtoAppointment(req.AppointmentId, view)}, nil
}

// fail logs err at a level matching its kind and converts it to a status.
func (s *BookingServer) fail(log *slog.Logger, msg string, err error, attrs ...any) error {
	attrs = append(attrs, slog.Any("err", err))
	switch {
	case service.IsValidation(err):
		log.Warn("invalid request", attrs...)
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, store.ErrConflict):
		log.Info(msg, attrs...)
		return status.Error(codes.FailedPrecondition, "One or more of those time slots is already taken. Pick a different slot.")
	case errors.Is(err, store.ErrDuplicateSlot):
		log.Info(msg, attrs...)
		return status.Error(codes.FailedPrecondition, "That time slot is already on the schedule.")
	case errors.Is(err, store.ErrSlotInUse):
		log.Info(msg, attrs...)
		return status.Error(codes.FailedPrecondition, "That time slot is booked. Cancel the appointment first.")
	case errors.Is(err, store.ErrNotFound):
		log.Info(msg, attrs...)
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn(msg, attrs...)
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		log.Info(msg, attrs...)
		return status.Error(codes.Canceled, "request cancelled")
	default:
		log.Error(msg, attrs...)
		return status.Error(codes.Internal, "internal error")
	}
}

func toSlotIndex(s *slotbookv1.Slot) domain.SlotIndex {
	return domain.SlotIndex{Day: int(s.GetDay()), Segment: int(s.GetTime())}
}

func toSlotIndexes(in []*slotbookv1.Slot) []domain.SlotIndex {
	out := make([]domain.SlotIndex, 0, len(in))
	for _, s := range in {
		out = append(out, toSlotIndex(s))
	}
	return out
}

func toProtoScheduleSlots(in []domain.ScheduleSlot) []*slotbookv1.ScheduleSlot {
	out := make([]*slotbookv1.ScheduleSlot, 0, len(in))
	for _, s := range in {
		out = append(out, &slotbookv1.ScheduleSlot{Id: s.ID, Day: int32(s.Day), Time: int32(s.Segment)})
	}
	return out
}

func toProtoLocations(in []domain.Location) []*slotbookv1.Location {
	out := make([]*slotbookv1.Location, 0, len(in))
	for _, l := range in {
		out = append(out, &slotbookv1.Location{Id: l.ID, Address: l.Address})
	}
	return out
}

func toProtoAppointment(id string, v domain.AppointmentView) *slotbookv1.Appointment {
	return &slotbookv1.Appointment{
		AppointmentId: id,
		Address:       v.Address,
		Day:           int32(v.Day),
		TimeChunks:    v.TimeChunks,
	}
}
