package state

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(filepath.Join(t.TempDir(), "presenter.db"))
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestGetResumeEmpty(t *testing.T) {
	m := openTestManager(t)
	r, err := m.GetResume("/slides/demo")
	if err != nil {
		t.Fatalf("GetResume: %v", err)
	}
	if r != nil {
		t.Errorf("fresh store returned %+v, want nil", r)
	}
}

func TestSaveAndGetResume(t *testing.T) {
	m := openTestManager(t)

	if err := saveResume(m.db, Resume{Presentation: "/slides/demo", SlideIndex: 4}); err != nil {
		t.Fatalf("saveResume: %v", err)
	}

	r, err := m.GetResume("/slides/demo")
	if err != nil {
		t.Fatalf("GetResume: %v", err)
	}
	if r == nil || r.SlideIndex != 4 {
		t.Fatalf("GetResume = %+v, want index 4", r)
	}
	if r.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not recorded")
	}
}

func TestSaveResumeUpserts(t *testing.T) {
	m := openTestManager(t)

	for _, idx := range []int{1, 7} {
		if err := saveResume(m.db, Resume{Presentation: "/slides/demo", SlideIndex: idx}); err != nil {
			t.Fatalf("saveResume: %v", err)
		}
	}

	r, err := m.GetResume("/slides/demo")
	if err != nil {
		t.Fatalf("GetResume: %v", err)
	}
	if r == nil || r.SlideIndex != 7 {
		t.Fatalf("GetResume = %+v, want index 7", r)
	}
}

func TestResumeIsPerPresentation(t *testing.T) {
	m := openTestManager(t)

	if err := saveResume(m.db, Resume{Presentation: "/slides/a", SlideIndex: 2}); err != nil {
		t.Fatal(err)
	}
	if err := saveResume(m.db, Resume{Presentation: "/slides/b", SlideIndex: 9}); err != nil {
		t.Fatal(err)
	}

	ra, _ := m.GetResume("/slides/a")
	rb, _ := m.GetResume("/slides/b")
	if ra == nil || ra.SlideIndex != 2 || rb == nil || rb.SlideIndex != 9 {
		t.Errorf("per-presentation rows mixed up: a=%+v b=%+v", ra, rb)
	}
}

func TestCloseFlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presenter.db")
	m, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}

	// Close before the debounce window elapses; the pending save must
	// still land.
	m.SaveResume(Resume{Presentation: "/slides/demo", SlideIndex: 3, UpdatedAt: time.Now()})
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	m2, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer m2.Close()
	r, err := m2.GetResume("/slides/demo")
	if err != nil {
		t.Fatalf("GetResume: %v", err)
	}
	if r == nil || r.SlideIndex != 3 {
		t.Errorf("GetResume after flush = %+v, want index 3", r)
	}
}
