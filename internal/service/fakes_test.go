package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/jackc/pgx/v5"
)

type fakeNoticeStore struct {
	notices []model.Notice
	err     error
}

func (f *fakeNoticeStore) List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.Notice, error) {
	return f.notices, f.err
}

type fakeBulletinStore struct {
	items []model.BulletinItem
	err   error
}

func (f *fakeBulletinStore) List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.BulletinItem, error) {
	return f.items, f.err
}

// fakeMaterialStore keeps counters in memory. When barrier is set, every
// GetDownloads call waits until barrier is released, so concurrent callers
// observe the same starting value.
type fakeMaterialStore struct {
	mu        sync.Mutex
	materials map[uuid.UUID]*model.Material
	listErr   error
	setErr    error
	writes    []int
	barrier   *sync.WaitGroup
}

func (f *fakeMaterialStore) List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.Material, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Material
	for _, m := range f.materials {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMaterialStore) GetByID(ctx context.Context, viewer model.Identity, id uuid.UUID) (*model.Material, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.materials[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialStore) GetDownloads(ctx context.Context, viewer model.Identity, id uuid.UUID) (*int, error) {
	f.mu.Lock()
	m, ok := f.materials[id]
	var n int
	if ok {
		n = m.Downloads
	}
	f.mu.Unlock()

	if f.barrier != nil {
		f.barrier.Done()
		f.barrier.Wait()
	}
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (f *fakeMaterialStore) SetDownloads(ctx context.Context, viewer model.Identity, id uuid.UUID, downloads int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.materials[id].Downloads = downloads
	f.writes = append(f.writes, downloads)
	return nil
}

func (f *fakeMaterialStore) downloads(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.materials[id].Downloads
}

type fakeContactStore struct {
	inserted []model.ContactForm
	messages []model.ContactMessage
	err      error
	listed   int
}

func (f *fakeContactStore) Insert(ctx context.Context, viewer model.Identity, form model.ContactForm) (*model.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, form)
	return &model.ContactMessage{ID: uuid.New(), Name: form.Name, Email: form.Email, Subject: form.Subject, Message: form.Message}, nil
}

func (f *fakeContactStore) List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.ContactMessage, error) {
	f.listed++
	return f.messages, f.err
}

type fakeNotifier struct {
	queued []*model.ContactMessage
	err    error
}

func (f *fakeNotifier) Enqueue(ctx context.Context, msg *model.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.queued = append(f.queued, msg)
	return nil
}

type fakeRoleStore struct {
	roles   map[uuid.UUID][]string
	err     error
	queries int
}

func (f *fakeRoleStore) ListByUser(ctx context.Context, viewer model.Identity, userID uuid.UUID) ([]model.RoleAssignment, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.RoleAssignment
	for _, r := range f.roles[userID] {
		out = append(out, model.RoleAssignment{UserID: userID, Role: r})
	}
	return out, nil
}
