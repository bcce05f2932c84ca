package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/rs/zerolog"
)

func strPtr(s string) *string { return &s }

func newMaterialFixture(downloads int, fileURL *string) (*fakeMaterialStore, uuid.UUID) {
	id := uuid.New()
	store := &fakeMaterialStore{materials: map[uuid.UUID]*model.Material{
		id: {ID: id, Title: "DBMS notes", Category: "notes", FileURL: fileURL, Downloads: downloads},
	}}
	return store, id
}

func TestIncrementDownloads(t *testing.T) {
	store, id := newMaterialFixture(7, strPtr("https://files.example/dbms.pdf"))
	svc := NewMaterialService(store, zerolog.Nop())

	svc.IncrementDownloads(context.Background(), model.Identity{UserID: uuid.New()}, id)

	if got := store.downloads(id); got != 8 {
		t.Errorf("downloads = %d, want 8", got)
	}
}

// Both callers read the same starting value before either writes, so both
// write start+1 and one increment is lost.
func TestIncrementDownloadsLosesConcurrentUpdate(t *testing.T) {
	const start = 10
	store, id := newMaterialFixture(start, strPtr("https://files.example/dbms.pdf"))
	store.barrier = &sync.WaitGroup{}
	store.barrier.Add(2)
	svc := NewMaterialService(store, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.IncrementDownloads(context.Background(), model.Identity{}, id)
		}()
	}
	wg.Wait()

	if len(store.writes) != 2 || store.writes[0] != start+1 || store.writes[1] != start+1 {
		t.Fatalf("writes = %v, want [%d %d]", store.writes, start+1, start+1)
	}
	if got := store.downloads(id); got != start+1 {
		t.Errorf("downloads = %d, want %d after two increments", got, start+1)
	}
}

func TestIncrementDownloadsSwallowsFailures(t *testing.T) {
	store, id := newMaterialFixture(3, nil)
	store.setErr = repository.ErrPolicyRefused
	svc := NewMaterialService(store, zerolog.Nop())

	svc.IncrementDownloads(context.Background(), model.Identity{}, id)
	svc.IncrementDownloads(context.Background(), model.Identity{}, uuid.New())

	if got := store.downloads(id); got != 3 {
		t.Errorf("downloads = %d, want unchanged 3", got)
	}
}

func TestOpenProceedsWhenIncrementRefused(t *testing.T) {
	store, id := newMaterialFixture(0, strPtr("https://files.example/pyq.pdf"))
	store.setErr = repository.ErrPolicyRefused
	svc := NewMaterialService(store, zerolog.Nop())

	url, err := svc.Open(context.Background(), model.Identity{}, id)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if url != "https://files.example/pyq.pdf" {
		t.Errorf("url = %q", url)
	}
}

func TestOpenWithoutFile(t *testing.T) {
	store, id := newMaterialFixture(5, strPtr(""))
	svc := NewMaterialService(store, zerolog.Nop())

	if _, err := svc.Open(context.Background(), model.Identity{}, id); !errors.Is(err, ErrFileUnavailable) {
		t.Fatalf("err = %v, want ErrFileUnavailable", err)
	}
	if len(store.writes) != 0 {
		t.Errorf("counter written for a material without a file: %v", store.writes)
	}

	if _, err := svc.Open(context.Background(), model.Identity{}, uuid.New()); !errors.Is(err, ErrMaterialNotFound) {
		t.Errorf("unknown id: err = %v, want ErrMaterialNotFound", err)
	}
}

func TestMaterialListByTab(t *testing.T) {
	store, _ := newMaterialFixture(0, nil)
	id := uuid.New()
	store.materials[id] = &model.Material{ID: id, Category: "practical", Semester: strPtr("5")}
	svc := NewMaterialService(store, zerolog.Nop())

	views, err := svc.List(context.Background(), model.Identity{}, "practical")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len = %d, want 1", len(views))
	}
	if views[0].CategoryName != "Practicals" || views[0].Icon != "flask-conical" || views[0].SemesterLabel != "5" {
		t.Errorf("view = %+v", views[0])
	}

	notes, _ := svc.List(context.Background(), model.Identity{}, "notes")
	if len(notes) != 1 || notes[0].SemesterLabel != model.DefaultSemester {
		t.Errorf("notes = %+v", notes)
	}

	store.listErr = errors.New("boom")
	if _, err := svc.List(context.Background(), model.Identity{}, "all"); err == nil {
		t.Error("expected FetchError")
	}
}
