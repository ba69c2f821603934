//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"prize-wheel/internal/domain/point"
	"prize-wheel/internal/domain/prize"
	"prize-wheel/internal/infra"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
)

// fakeCatalog scripts the catalog port. FindActive returns the snapshots in
// order (repeating the last); DecrementStock consults decrementResults the
// same way, so tests can replay lost races.
type fakeCatalog struct {
	mu sync.Mutex

	snapshots     [][]*prize.Prize
	snapshotIdx   int
	findActiveErr error

	byID map[uuid.UUID]*prize.Prize

	decrementResults []error
	decrementIdx     int
	decremented      []uuid.UUID

	createErr error
	updateErr error
	deleteErr error
	created   []*prize.Prize
	updated   []*prize.Prize
	deleted   []uuid.UUID
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{byID: make(map[uuid.UUID]*prize.Prize)}
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (f *fakeCatalog) Create(_ context.Context, p *prize.Prize) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, p)
	f.byID[p.ID()] = p
	return p.ID(), nil
}

func (f *fakeCatalog) Update(_ context.Context, p *prize.Prize) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[p.ID()]; !ok {
		return notFoundErr("prize not found")
	}
	f.updated = append(f.updated, p)
	f.byID[p.ID()] = p
	return nil
}

func (f *fakeCatalog) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return notFoundErr("prize not found")
	}
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeCatalog) FindByID(_ context.Context, id uuid.UUID) (*prize.Prize, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, notFoundErr("prize not found")
	}
	return p, nil
}

func (f *fakeCatalog) FindActive(_ context.Context) ([]*prize.Prize, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findActiveErr != nil {
		return nil, f.findActiveErr
	}
	if len(f.snapshots) == 0 {
		return nil, nil
	}
	snapshot := f.snapshots[f.snapshotIdx]
	if f.snapshotIdx < len(f.snapshots)-1 {
		f.snapshotIdx++
	}
	return snapshot, nil
}

func (f *fakeCatalog) DecrementStock(_ context.Context, id uuid.UUID, _ time.Time) (*prize.Prize, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decremented = append(f.decremented, id)

	var result error
	if len(f.decrementResults) > 0 {
		result = f.decrementResults[f.decrementIdx]
		if f.decrementIdx < len(f.decrementResults)-1 {
			f.decrementIdx++
		}
	}
	if result != nil {
		return nil, result
	}

	p, ok := f.byID[id]
	if !ok {
		return nil, notFoundErr("prize not found")
	}
	return p, nil
}

type creditCall struct {
	userID    uuid.UUID
	prizeID   uuid.UUID
	quantity  int32
	expiresAt *time.Time
}

type consumeCall struct {
	userID   uuid.UUID
	prizeID  uuid.UUID
	quantity int32
}

type fakeInventory struct {
	mu sync.Mutex

	creditErr  error
	consumeErr error
	pruneErr   error

	consumeView *queries.InventoryEntryView

	credits  []creditCall
	consumes []consumeCall
	prunes   []uuid.UUID
}

func (f *fakeInventory) Credit(_ context.Context, userID, prizeID uuid.UUID, quantity int32, expiresAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.creditErr != nil {
		return f.creditErr
	}
	f.credits = append(f.credits, creditCall{userID: userID, prizeID: prizeID, quantity: quantity, expiresAt: expiresAt})
	return nil
}

func (f *fakeInventory) ConditionalConsume(_ context.Context, userID, prizeID uuid.UUID, quantity int32) (*queries.InventoryEntryView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.consumeErr != nil {
		return nil, f.consumeErr
	}
	f.consumes = append(f.consumes, consumeCall{userID: userID, prizeID: prizeID, quantity: quantity})
	if f.consumeView != nil {
		return f.consumeView, nil
	}
	return &queries.InventoryEntryView{PrizeID: prizeID, Quantity: 0}, nil
}

func (f *fakeInventory) PruneEmpty(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pruneErr != nil {
		return f.pruneErr
	}
	f.prunes = append(f.prunes, userID)
	return nil
}

type adjustCall struct {
	userID      uuid.UUID
	amount      int64
	description string
	cause       point.Cause
}

type fakeLedger struct {
	mu sync.Mutex

	adjustErr error
	balance   int64
	adjusts   []adjustCall
}

func (f *fakeLedger) AtomicAdjust(_ context.Context, userID uuid.UUID, amount int64, description string, cause point.Cause) (*queries.PointHistoryView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.adjustErr != nil {
		return nil, f.adjustErr
	}
	before := f.balance
	f.balance += amount
	f.adjusts = append(f.adjusts, adjustCall{userID: userID, amount: amount, description: description, cause: cause})
	return &queries.PointHistoryView{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  f.balance,
		Description:   description,
		Cause:         cause.String(),
		CreatedAt:     time.Now(),
	}, nil
}
