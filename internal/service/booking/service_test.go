package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"slotbook/internal/domain"
	"slotbook/internal/service"
	"slotbook/internal/store"
	"slotbook/internal/store/rediscache"
)

type fakeRepo struct {
	reserveFn func(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error
	cancelFn  func(ctx context.Context, appointmentID string) error
	listFn    func(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error)
}

func (f *fakeRepo) Reserve(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error {
	if f.reserveFn == nil {
		panic("Reserve not configured")
	}
	return f.reserveFn(ctx, appointmentID, providerID, locationID, slots)
}

func (f *fakeRepo) Cancel(ctx context.Context, appointmentID string) error {
	if f.cancelFn == nil {
		panic("Cancel not configured")
	}
	return f.cancelFn(ctx, appointmentID)
}

func (f *fakeRepo) ListReservedSlots(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
	if f.listFn == nil {
		panic("ListReservedSlots not configured")
	}
	return f.listFn(ctx, providerID)
}

// memLedger mirrors the storage contract: a reservation only resolves for a
// declared slot at a served location, and each slot holds one reservation.
type memLedger struct {
	mu        sync.Mutex
	declared  map[int64]map[domain.SlotIndex]bool
	serves    map[int64]map[int64]string
	reserved  map[int64]map[domain.SlotIndex]string
	locations map[string]int64
}

func newMemLedger() *memLedger {
	return &memLedger{
		declared:  map[int64]map[domain.SlotIndex]bool{},
		serves:    map[int64]map[int64]string{},
		reserved:  map[int64]map[domain.SlotIndex]string{},
		locations: map[string]int64{},
	}
}

func (m *memLedger) declare(providerID int64, slots ...domain.SlotIndex) {
	if m.declared[providerID] == nil {
		m.declared[providerID] = map[domain.SlotIndex]bool{}
	}
	for _, s := range slots {
		m.declared[providerID][s] = true
	}
}

func (m *memLedger) serve(providerID, locationID int64, address string) {
	if m.serves[providerID] == nil {
		m.serves[providerID] = map[int64]string{}
	}
	m.serves[providerID][locationID] = address
}

func (m *memLedger) Reserve(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.serves[providerID][locationID]; !ok {
		return store.ErrConflict
	}
	for _, s := range slots {
		if !m.declared[providerID][s] {
			return store.ErrConflict
		}
		if _, taken := m.reserved[providerID][s]; taken {
			return store.ErrConflict
		}
	}
	if m.reserved[providerID] == nil {
		m.reserved[providerID] = map[domain.SlotIndex]string{}
	}
	for _, s := range slots {
		m.reserved[providerID][s] = appointmentID
	}
	m.locations[appointmentID] = locationID
	return nil
}

func (m *memLedger) Cancel(ctx context.Context, appointmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, bySlot := range m.reserved {
		for s, id := range bySlot {
			if id == appointmentID {
				delete(bySlot, s)
				removed++
			}
		}
	}
	if removed == 0 {
		return store.ErrNotFound
	}
	delete(m.locations, appointmentID)
	return nil
}

func (m *memLedger) ListReservedSlots(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.ReservedSlot
	for s, id := range m.reserved[providerID] {
		out = append(out, domain.ReservedSlot{
			AppointmentID: id,
			Day:           s.Day,
			Segment:       s.Segment,
			Address:       m.serves[providerID][m.locations[id]],
		})
	}
	return out, nil
}

func (m *memLedger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, bySlot := range m.reserved {
		n += len(bySlot)
	}
	return n
}

type cacheKey struct {
	providerID int64
	gen        int64
}

type fakeCache struct {
	gens        map[int64]int64
	views       map[cacheKey]map[string]domain.AppointmentView
	genErr      error
	getErr      error
	sets        int
	invalidated []int64
}

func (c *fakeCache) Generation(ctx context.Context, providerID int64) (int64, error) {
	if c.genErr != nil {
		return 0, c.genErr
	}
	return c.gens[providerID], nil
}

func (c *fakeCache) Get(ctx context.Context, providerID, gen int64) (map[string]domain.AppointmentView, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.views[cacheKey{providerID, gen}]
	return v, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, providerID, gen int64, views map[string]domain.AppointmentView) error {
	if c.views == nil {
		c.views = map[cacheKey]map[string]domain.AppointmentView{}
	}
	c.sets++
	c.views[cacheKey{providerID, gen}] = views
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, providerID int64) error {
	if c.gens == nil {
		c.gens = map[int64]int64{}
	}
	c.invalidated = append(c.invalidated, providerID)
	c.gens[providerID]++
	return nil
}

func onDay(day int, segments ...int) []domain.SlotIndex {
	out := make([]domain.SlotIndex, 0, len(segments))
	for _, s := range segments {
		out = append(out, domain.SlotIndex{Day: day, Segment: s})
	}
	return out
}

func seededLedger() *memLedger {
	m := newMemLedger()
	m.serve(0, 0, "123 Main St")
	m.serve(0, 1, "9 Elm St")
	m.declare(0, onDay(1, 19, 20, 21, 22, 23, 24)...)
	return m
}

func TestServiceReserve_ValidationErrors(t *testing.T) {
	svc := NewService(&fakeRepo{})

	tests := []struct {
		name    string
		slots   []domain.SlotIndex
		wantMsg string
	}{
		{name: "empty", slots: nil, wantMsg: "at least one time slot is required"},
		{name: "day out of range", slots: onDay(7, 1), wantMsg: "day must be between 0 and 6"},
		{name: "segment out of range", slots: onDay(1, 48), wantMsg: "time must be between 0 and 47"},
		{name: "duplicate slot", slots: onDay(1, 3, 3), wantMsg: "duplicate time slot 1.3"},
		{name: "multiple days", slots: []domain.SlotIndex{{Day: 1, Segment: 3}, {Day: 2, Segment: 3}}, wantMsg: "time slots must fall on a single day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.Reserve(context.Background(), ReserveInput{ProviderID: 0, LocationID: 0, Slots: tt.slots})
			if id != "" {
				t.Fatalf("id = %q, want empty", id)
			}
			var vErr *service.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *service.ValidationError", err)
			}
			if vErr.Error() != tt.wantMsg {
				t.Fatalf("error = %q, want %q", vErr.Error(), tt.wantMsg)
			}
		})
	}
}

func TestServiceReserve_PassesDerivedIdentifier(t *testing.T) {
	var gotID string
	var gotSlots []domain.SlotIndex
	svc := NewService(&fakeRepo{
		reserveFn: func(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error {
			gotID = appointmentID
			gotSlots = slots
			return nil
		},
	})

	slots := onDay(1, 21, 22)
	id, err := svc.Reserve(context.Background(), ReserveInput{ProviderID: 3, LocationID: 4, Slots: slots})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if id != "3.4_1.21_1.22" || gotID != id {
		t.Fatalf("id = %q, repo id = %q, want %q", id, gotID, "3.4_1.21_1.22")
	}
	if len(gotSlots) != 2 {
		t.Fatalf("slots passed = %v", gotSlots)
	}
}

func TestServiceReserve_StorageFaultPassesThrough(t *testing.T) {
	boom := errors.New("storage down")
	svc := NewService(&fakeRepo{
		reserveFn: func(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error {
			return boom
		},
	})

	_, err := svc.Reserve(context.Background(), ReserveInput{Slots: onDay(1, 1)})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestService_BookConflictCancelRebook(t *testing.T) {
	ledger := seededLedger()
	svc := NewService(ledger)
	ctx := context.Background()

	id, err := svc.Reserve(ctx, ReserveInput{ProviderID: 0, LocationID: 0, Slots: onDay(1, 21, 22, 23, 24)})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}

	_, err = svc.Reserve(ctx, ReserveInput{ProviderID: 0, LocationID: 0, Slots: onDay(1, 20, 21)})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("overlap err = %v, want %v", err, store.ErrConflict)
	}

	if err := svc.Cancel(ctx, id); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if err := svc.Cancel(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second cancel err = %v, want %v", err, store.ErrNotFound)
	}

	views, err := svc.ListAppointments(ctx, 0)
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if _, ok := views[id]; ok {
		t.Fatalf("cancelled appointment %q still listed", id)
	}

	if _, err := svc.Reserve(ctx, ReserveInput{ProviderID: 0, LocationID: 0, Slots: onDay(1, 21, 22)}); err != nil {
		t.Fatalf("rebook error: %v", err)
	}
}

func TestService_UnavailableRequestsLeaveNoRows(t *testing.T) {
	ledger := seededLedger()
	svc := NewService(ledger)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ReserveInput
	}{
		{name: "provider without slots", in: ReserveInput{ProviderID: 2, LocationID: 0, Slots: onDay(1, 21, 22)}},
		{name: "location not served", in: ReserveInput{ProviderID: 0, LocationID: 5, Slots: onDay(1, 21, 22)}},
		{name: "one slot undeclared", in: ReserveInput{ProviderID: 0, LocationID: 0, Slots: onDay(1, 22, 23, 24, 25)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ledger.count()
			id, err := svc.Reserve(ctx, tt.in)
			if !errors.Is(err, store.ErrConflict) {
				t.Fatalf("err = %v, want %v", err, store.ErrConflict)
			}
			if id != "" {
				t.Fatalf("id = %q, want empty", id)
			}
			if after := ledger.count(); after != before {
				t.Fatalf("reservation rows %d -> %d, want unchanged", before, after)
			}
		})
	}
}

func TestService_ReserveListRoundTrip(t *testing.T) {
	ledger := seededLedger()
	svc := NewService(ledger)
	ctx := context.Background()

	slots := onDay(1, 24, 22, 23)
	id, err := svc.Reserve(ctx, ReserveInput{ProviderID: 0, LocationID: 1, Slots: slots})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}

	views, err := svc.ListAppointments(ctx, 0)
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	view, ok := views[id]
	if !ok {
		t.Fatalf("appointment %q missing from %v", id, views)
	}
	if view.Address != "9 Elm St" || view.Day != 1 {
		t.Fatalf("view = %+v", view)
	}

	if view.TimeChunks != "22,23,24" {
		t.Fatalf("time chunks = %q, want %q", view.TimeChunks, "22,23,24")
	}

	got, err := svc.GetAppointment(ctx, id)
	if err != nil {
		t.Fatalf("GetAppointment error: %v", err)
	}
	if got != view {
		t.Fatalf("GetAppointment = %+v, want %+v", got, view)
	}
}

func TestService_ConcurrentOverlappingReservations(t *testing.T) {
	ledger := seededLedger()
	svc := NewService(ledger)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slots := onDay(1, 22)
			if i%2 == 0 {
				slots = onDay(1, 21, 22)
			}
			_, err := svc.Reserve(context.Background(), ReserveInput{ProviderID: 0, LocationID: 0, Slots: slots})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	wins := 0
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		if !errors.Is(err, store.ErrConflict) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("wins = %d, want 1", wins)
	}
}

func TestServiceCancel_Identifiers(t *testing.T) {
	called := false
	svc := NewService(&fakeRepo{
		cancelFn: func(ctx context.Context, appointmentID string) error {
			called = true
			return nil
		},
	})

	if err := svc.Cancel(context.Background(), "  "); !service.IsValidation(err) {
		t.Fatalf("blank id err = %v, want validation error", err)
	}
	if err := svc.Cancel(context.Background(), "00_119_120"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("malformed id err = %v, want %v", err, store.ErrNotFound)
	}
	if called {
		t.Fatalf("repository must not be called for invalid identifiers")
	}
}

func TestServiceListAppointments_UsesAndInvalidatesCache(t *testing.T) {
	listCalls := 0
	cache := &fakeCache{}
	svc := NewService(&fakeRepo{
		listFn: func(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
			listCalls++
			return []domain.ReservedSlot{
				{AppointmentID: "0.0_1.19", Day: 1, Segment: 19, Address: "123 Main St"},
			}, nil
		},
		reserveFn: func(ctx context.Context, appointmentID string, providerID, locationID int64, slots []domain.SlotIndex) error {
			return nil
		},
		cancelFn: func(ctx context.Context, appointmentID string) error {
			return nil
		},
	}, WithViewCache(cache))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.ListAppointments(ctx, 0); err != nil {
			t.Fatalf("ListAppointments error: %v", err)
		}
	}
	if listCalls != 1 {
		t.Fatalf("repository list calls = %d, want 1", listCalls)
	}

	if _, err := svc.Reserve(ctx, ReserveInput{ProviderID: 0, LocationID: 0, Slots: onDay(2, 1)}); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if err := svc.Cancel(ctx, "7.0_1.19"); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if len(cache.invalidated) != 2 || cache.invalidated[0] != 0 || cache.invalidated[1] != 7 {
		t.Fatalf("invalidated = %v, want [0 7]", cache.invalidated)
	}

	if _, err := svc.ListAppointments(ctx, 0); err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if listCalls != 2 {
		t.Fatalf("repository list calls = %d, want 2 after invalidation", listCalls)
	}
}

func TestServiceListAppointments_CacheErrorFallsBackToStore(t *testing.T) {
	svc := NewService(&fakeRepo{
		listFn: func(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
			return []domain.ReservedSlot{
				{AppointmentID: "0.0_3.4", Day: 3, Segment: 4, Address: "x"},
			}, nil
		},
	}, WithViewCache(&fakeCache{getErr: errors.New("redis down")}))

	views, err := svc.ListAppointments(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("views = %v, want 1 entry", views)
	}
}

func TestServiceGetAppointment_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{
		listFn: func(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
			return nil, nil
		},
	})

	if _, err := svc.GetAppointment(context.Background(), "0.0_1.1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrNotFound)
	}
	if _, err := svc.GetAppointment(context.Background(), "garbage"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestServiceListAppointments_GenerationErrorSkipsCache(t *testing.T) {
	cache := &fakeCache{genErr: errors.New("redis down")}
	svc := NewService(&fakeRepo{
		listFn: func(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
			return []domain.ReservedSlot{{AppointmentID: "0.0_3.4", Day: 3, Segment: 4, Address: "x"}}, nil
		},
	}, WithViewCache(cache))

	views, err := svc.ListAppointments(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("views = %v, want 1 entry", views)
	}
	if cache.sets != 0 {
		t.Fatalf("cache sets = %d, want 0 without a generation", cache.sets)
	}
}

// pausingLedger holds the first ListReservedSlots call after it has read the
// rows, until release is closed.
type pausingLedger struct {
	*memLedger
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func (p *pausingLedger) ListReservedSlots(ctx context.Context, providerID int64) ([]domain.ReservedSlot, error) {
	rows, err := p.memLedger.ListReservedSlots(ctx, providerID)
	p.once.Do(func() {
		close(p.loaded)
		<-p.release
	})
	return rows, err
}

func TestServiceListAppointments_CancelDuringReadIsNotResurrected(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := &pausingLedger{
		memLedger: seededLedger(),
		loaded:    make(chan struct{}),
		release:   make(chan struct{}),
	}
	svc := NewService(repo, WithViewCache(rediscache.NewAppointmentViewCache(rdb, time.Minute)))
	ctx := context.Background()

	id, err := svc.Reserve(ctx, ReserveInput{ProviderID: 0, LocationID: 0, Slots: onDay(1, 21)})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}

	readDone := make(chan error, 1)
	go func() {
		_, err := svc.ListAppointments(ctx, 0)
		readDone <- err
	}()

	<-repo.loaded
	if err := svc.Cancel(ctx, id); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	close(repo.release)
	if err := <-readDone; err != nil {
		t.Fatalf("concurrent ListAppointments error: %v", err)
	}

	views, err := svc.ListAppointments(ctx, 0)
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if _, ok := views[id]; ok {
		t.Fatalf("cancelled appointment %q still listed: %v", id, views)
	}
	if _, err := svc.GetAppointment(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("GetAppointment err = %v, want %v", err, store.ErrNotFound)
	}

	// The slot is free again and a rebooking shows up immediately.
	if _, err := svc.Reserve(ctx, ReserveInput{ProviderID: 0, LocationID: 0, Slots: onDay(1, 21)}); err != nil {
		t.Fatalf("rebook error: %v", err)
	}
	views, err = svc.ListAppointments(ctx, 0)
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if _, ok := views[id]; !ok {
		t.Fatalf("rebooked appointment %q missing: %v", id, views)
	}
}
