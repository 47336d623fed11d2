package grpc

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"slotbook/internal/domain"
	slotbookv1 "slotbook/internal/gen/proto/slotbook/v1"
	"slotbook/internal/observability/requestid"
	"slotbook/internal/service"
	"slotbook/internal/service/booking"
	"slotbook/internal/store"
)

type fakeLedgerService struct {
	declareFn       func(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error)
	revokeFn        func(ctx context.Context, providerID int64, slot domain.SlotIndex) error
	listSlotsFn     func(ctx context.Context, providerID int64) ([]domain.ScheduleSlot, error)
	isBookableFn    func(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error)
	listLocationsFn func(ctx context.Context, providerID int64) ([]domain.Location, error)
}

func (f *fakeLedgerService) DeclareSlots(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error) {
	if f.declareFn == nil {
		panic("DeclareSlots not configured")
	}
	return f.declareFn(ctx, providerID, slots)
}

func (f *fakeLedgerService) RevokeSlot(ctx context.Context, providerID int64, slot domain.SlotIndex) error {
	if f.revokeFn == nil {
		panic("RevokeSlot not configured")
	}
	return f.revokeFn(ctx, providerID, slot)
}

func (f *fakeLedgerService) ListSlots(ctx context.Context, providerID int64) ([]domain.ScheduleSlot, error) {
	if f.listSlotsFn == nil {
		panic("ListSlots not configured")
	}
	return f.listSlotsFn(ctx, providerID)
}

func (f *fakeLedgerService) IsBookable(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error) {
	if f.isBookableFn == nil {
		panic("IsBookable not configured")
	}
	return f.isBookableFn(ctx, providerID, locationID, slot)
}

func (f *fakeLedgerService) ListLocations(ctx context.Context, providerID int64) ([]domain.Location, error) {
	if f.listLocationsFn == nil {
		panic("ListLocations not configured")
	}
	return f.listLocationsFn(ctx, providerID)
}

type fakeBookingService struct {
	reserveFn func(ctx context.Context, in booking.ReserveInput) (string, error)
	cancelFn  func(ctx context.Context, appointmentID string) error
	listFn    func(ctx context.Context, providerID int64) (map[string]domain.AppointmentView, error)
	getFn     func(ctx context.Context, appointmentID string) (domain.AppointmentView, error)
}

func (f *fakeBookingService) Reserve(ctx context.Context, in booking.ReserveInput) (string, error) {
	if f.reserveFn == nil {
		panic("Reserve not configured")
	}
	return f.reserveFn(ctx, in)
}

func (f *fakeBookingService) Cancel(ctx context.Context, appointmentID string) error {
	if f.cancelFn == nil {
		panic("Cancel not configured")
	}
	return f.cancelFn(ctx, appointmentID)
}

func (f *fakeBookingService) ListAppointments(ctx context.Context, providerID int64) (map[string]domain.AppointmentView, error) {
	if f.listFn == nil {
		panic("ListAppointments not configured")
	}
	return f.listFn(ctx, providerID)
}

func (f *fakeBookingService) GetAppointment(ctx context.Context, appointmentID string) (domain.AppointmentView, error) {
	if f.getFn == nil {
		panic("GetAppointment not configured")
	}
	return f.getFn(ctx, appointmentID)
}

func TestReserve_PassesSlotsAndReturnsID(t *testing.T) {
	var got booking.ReserveInput
	srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{
		reserveFn: func(ctx context.Context, in booking.ReserveInput) (string, error) {
			got = in
			return "1.0_5.16_5.17", nil
		},
	}, slog.Default())

	resp, err := srv.Reserve(context.Background(), &slotbookv1.ReserveRequest{
		ProviderId: 1,
		LocationId: 0,
		TimeSlots:  []*slotbookv1.Slot{{Day: 5, Time: 16}, {Day: 5, Time: 17}},
	})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if resp.GetAppointmentId() != "1.0_5.16_5.17" {
		t.Fatalf("appointment id = %q, want %q", resp.GetAppointmentId(), "1.0_5.16_5.17")
	}
	if got.ProviderID != 1 || len(got.Slots) != 2 || got.Slots[1] != (domain.SlotIndex{Day: 5, Segment: 17}) {
		t.Fatalf("input = %+v", got)
	}
}

func TestReserve_MapsErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "validation", err: service.Invalid("at least one time slot is required"), want: codes.InvalidArgument},
		{name: "conflict", err: store.ErrConflict, want: codes.FailedPrecondition},
		{name: "wrapped conflict", err: errors.Join(errors.New("tx"), store.ErrConflict), want: codes.FailedPrecondition},
		{name: "deadline", err: context.DeadlineExceeded, want: codes.DeadlineExceeded},
		{name: "internal", err: errors.New("boom"), want: codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{
				reserveFn: func(ctx context.Context, in booking.ReserveInput) (string, error) {
					return "", tc.err
				},
			}, slog.Default())

			_, err := srv.Reserve(context.Background(), &slotbookv1.ReserveRequest{ProviderId: 1})
			if status.Code(err) != tc.want {
				t.Fatalf("code = %v, want %v (err=%v)", status.Code(err), tc.want, err)
			}
		})
	}
}

func TestReserve_InternalErrorHidesDetail(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{
		reserveFn: func(ctx context.Context, in booking.ReserveInput) (string, error) {
			return "", errors.New("pq: password authentication failed")
		},
	}, slog.Default())

	_, err := srv.Reserve(context.Background(), &slotbookv1.ReserveRequest{})
	if got := status.Convert(err).Message(); got != "internal error" {
		t.Fatalf("message = %q, want %q", got, "internal error")
	}
}

func TestNilRequestsAreInvalid(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{}, nil)
	ctx := context.Background()

	calls := map[string]func() error{
		"DeclareSlots":     func() error { _, err := srv.DeclareSlots(ctx, nil); return err },
		"RevokeSlot":       func() error { _, err := srv.RevokeSlot(ctx, nil); return err },
		"ListSlots":        func() error { _, err := srv.ListSlots(ctx, nil); return err },
		"IsBookable":       func() error { _, err := srv.IsBookable(ctx, nil); return err },
		"ListLocations":    func() error { _, err := srv.ListLocations(ctx, nil); return err },
		"Reserve":          func() error { _, err := srv.Reserve(ctx, nil); return err },
		"Cancel":           func() error { _, err := srv.Cancel(ctx, nil); return err },
		"ListAppointments": func() error { _, err := srv.ListAppointments(ctx, nil); return err },
		"GetAppointment":   func() error { _, err := srv.GetAppointment(ctx, nil); return err },
	}
	for name, call := range calls {
		if code := status.Code(call()); code != codes.InvalidArgument {
			t.Fatalf("%s code = %v, want %v", name, code, codes.InvalidArgument)
		}
	}
}

func TestRevokeSlot_RequiresSlotAndMapsInUse(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{
		revokeFn: func(ctx context.Context, providerID int64, slot domain.SlotIndex) error {
			return store.ErrSlotInUse
		},
	}, &fakeBookingService{}, slog.Default())

	_, err := srv.RevokeSlot(context.Background(), &slotbookv1.RevokeSlotRequest{ProviderId: 1})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing slot code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}

	_, err = srv.RevokeSlot(context.Background(), &slotbookv1.RevokeSlotRequest{ProviderId: 1, Slot: &slotbookv1.Slot{Day: 1, Time: 2}})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("in use code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
}

func TestDeclareSlots_ReturnsCreatedSlots(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{
		declareFn: func(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error) {
			out := make([]domain.ScheduleSlot, 0, len(slots))
			for i, s := range slots {
				out = append(out, domain.ScheduleSlot{ID: int64(i + 10), ProviderID: providerID, Day: int16(s.Day), Segment: int16(s.Segment)})
			}
			return out, nil
		},
	}, &fakeBookingService{}, slog.Default())

	resp, err := srv.DeclareSlots(context.Background(), &slotbookv1.DeclareSlotsRequest{
		ProviderId:   3,
		WeekSchedule: []*slotbookv1.Slot{{Day: 0, Time: 1}, {Day: 6, Time: 47}},
	})
	if err != nil {
		t.Fatalf("DeclareSlots error: %v", err)
	}
	want := []*slotbookv1.ScheduleSlot{{Id: 10, Day: 0, Time: 1}, {Id: 11, Day: 6, Time: 47}}
	if len(resp.GetSlots()) != len(want) {
		t.Fatalf("slots = %v, want %v", resp.GetSlots(), want)
	}
	for i := range want {
		if !proto.Equal(resp.GetSlots()[i], want[i]) {
			t.Fatalf("slot[%d] = %v, want %v", i, resp.GetSlots()[i], want[i])
		}
	}
}

func TestDeclareSlots_DuplicateIsFailedPrecondition(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{
		declareFn: func(ctx context.Context, providerID int64, slots []domain.SlotIndex) ([]domain.ScheduleSlot, error) {
			return nil, store.ErrDuplicateSlot
		},
	}, &fakeBookingService{}, slog.Default())

	_, err := srv.DeclareSlots(context.Background(), &slotbookv1.DeclareSlotsRequest{ProviderId: 3, WeekSchedule: []*slotbookv1.Slot{{Day: 0, Time: 1}}})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
}

func TestCancel_NotFound(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{
		cancelFn: func(ctx context.Context, appointmentID string) error {
			return store.ErrNotFound
		},
	}, slog.Default())

	_, err := srv.Cancel(context.Background(), &slotbookv1.CancelRequest{AppointmentId: "1.0_5.16"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestListAppointments_ConvertsViewsInIDOrder(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{
		listFn: func(ctx context.Context, providerID int64) (map[string]domain.AppointmentView, error) {
			return map[string]domain.AppointmentView{
				"1.0_5.16_5.17": {Address: "123 Main St", Day: 5, TimeChunks: "16,17"},
				"1.0_2.3":       {Address: "123 Main St", Day: 2, TimeChunks: "3"},
			}, nil
		},
	}, slog.Default())

	resp, err := srv.ListAppointments(context.Background(), &slotbookv1.ListAppointmentsRequest{ProviderId: 1})
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	want := []*slotbookv1.Appointment{
		{AppointmentId: "1.0_2.3", Address: "123 Main St", Day: 2, TimeChunks: "3"},
		{AppointmentId: "1.0_5.16_5.17", Address: "123 Main St", Day: 5, TimeChunks: "16,17"},
	}
	got := resp.GetAppointments()
	if len(got) != len(want) {
		t.Fatalf("appointments = %v, want %v", got, want)
	}
	for i := range want {
		if !proto.Equal(got[i], want[i]) {
			t.Fatalf("appointment[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGetAppointment_EchoesID(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{
		getFn: func(ctx context.Context, appointmentID string) (domain.AppointmentView, error) {
			return domain.AppointmentView{Address: "9 Elm St", Day: 1, TimeChunks: "19,20"}, nil
		},
	}, slog.Default())

	resp, err := srv.GetAppointment(context.Background(), &slotbookv1.GetAppointmentRequest{AppointmentId: "0.1_1.19_1.20"})
	if err != nil {
		t.Fatalf("GetAppointment error: %v", err)
	}
	want := &slotbookv1.Appointment{AppointmentId: "0.1_1.19_1.20", Address: "9 Elm St", Day: 1, TimeChunks: "19,20"}
	if !proto.Equal(resp.GetAppointment(), want) {
		t.Fatalf("appointment = %v, want %v", resp.GetAppointment(), want)
	}
}

func TestIsBookable_ReturnsFlag(t *testing.T) {
	srv := NewBookingServer(&fakeLedgerService{
		isBookableFn: func(ctx context.Context, providerID, locationID int64, slot domain.SlotIndex) (bool, error) {
			return providerID == 1 && locationID == 0 && slot == domain.SlotIndex{Day: 5, Segment: 16}, nil
		},
	}, &fakeBookingService{}, slog.Default())

	resp, err := srv.IsBookable(context.Background(), &slotbookv1.IsBookableRequest{ProviderId: 1, LocationId: 0, Slot: &slotbookv1.Slot{Day: 5, Time: 16}})
	if err != nil {
		t.Fatalf("IsBookable error: %v", err)
	}
	if !resp.GetBookable() {
		t.Fatalf("bookable = false, want true")
	}
}

func TestFailureLogsCarryRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	srv := NewBookingServer(&fakeLedgerService{}, &fakeBookingService{
		cancelFn: func(ctx context.Context, appointmentID string) error {
			return errors.New("boom")
		},
	}, log)

	ctx := requestid.WithContext(context.Background(), "req-7")
	if _, err := srv.Cancel(ctx, &slotbookv1.CancelRequest{AppointmentId: "1.0_5.16"}); status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Internal)
	}
	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-7"`) || !strings.Contains(out, `"rpc":"Cancel"`) {
		t.Fatalf("log output = %s, want request_id and rpc attributes", out)
	}
}
