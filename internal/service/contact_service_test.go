package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

var sampleForm = model.ContactForm{
	Name:    "Asha Verma",
	Email:   "asha@example.com",
	Subject: "Admission query",
	Message: "When does counselling start?",
}

func TestSubmitClearsFormOnSuccess(t *testing.T) {
	store := &fakeContactStore{}
	notifier := &fakeNotifier{}
	svc := NewContactService(store, notifier, zerolog.Nop())

	form, err := svc.Submit(context.Background(), model.Identity{}, sampleForm)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !form.IsZero() {
		t.Errorf("form = %+v, want cleared", form)
	}
	if len(store.inserted) != 1 || store.inserted[0] != sampleForm {
		t.Errorf("inserted = %+v", store.inserted)
	}
	if len(notifier.queued) != 1 {
		t.Errorf("notifications queued = %d, want 1", len(notifier.queued))
	}
}

func TestSubmitPreservesFormOnFailure(t *testing.T) {
	cause := errors.New("insert refused")
	notifier := &fakeNotifier{}
	svc := NewContactService(&fakeContactStore{err: cause}, notifier, zerolog.Nop())

	form, err := svc.Submit(context.Background(), model.Identity{}, sampleForm)

	var me *MutationError
	if !errors.As(err, &me) || !errors.Is(err, cause) {
		t.Fatalf("err = %v, want MutationError", err)
	}
	if form != sampleForm {
		t.Errorf("form = %+v, want unchanged", form)
	}
	if len(notifier.queued) != 0 {
		t.Error("notification queued for a failed submit")
	}
}

func TestSubmitIgnoresNotifierFailure(t *testing.T) {
	svc := NewContactService(&fakeContactStore{}, &fakeNotifier{err: errors.New("redis down")}, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), model.Identity{}, sampleForm); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	svc = NewContactService(&fakeContactStore{}, nil, zerolog.Nop())
	if _, err := svc.Submit(context.Background(), model.Identity{}, sampleForm); err != nil {
		t.Fatalf("Submit without notifier: %v", err)
	}
}
