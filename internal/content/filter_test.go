package content

import (
	"reflect"
	"testing"
)

type item struct {
	id       int
	category string
}

func (i item) CategoryKey() string { return i.category }

func TestFilterByCategoryAll(t *testing.T) {
	records := []item{{1, "notes"}, {2, "pyq"}, {3, "notes"}, {4, "mst"}}

	got := FilterByCategory(records, All)
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("FilterByCategory(all) = %v, want %v", got, records)
	}
}

func TestFilterByCategoryIsStable(t *testing.T) {
	records := []item{{1, "notes"}, {2, "pyq"}, {3, "notes"}, {4, "mst"}, {5, "notes"}}

	got := FilterByCategory(records, "notes")
	want := []item{{1, "notes"}, {3, "notes"}, {5, "notes"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterByCategory(notes) = %v, want %v", got, want)
	}
	for _, r := range got {
		if r.category != "notes" {
			t.Errorf("record %d has category %q", r.id, r.category)
		}
	}
}

func TestFilterByCategoryEmpty(t *testing.T) {
	if got := FilterByCategory([]item{}, "notes"); got == nil || len(got) != 0 {
		t.Errorf("empty input: got %v, want empty non-nil slice", got)
	}

	records := []item{{1, "notes"}}
	got := FilterByCategory(records, "practical")
	if got == nil {
		t.Fatal("no matches: got nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("no matches: got %v", got)
	}
}
