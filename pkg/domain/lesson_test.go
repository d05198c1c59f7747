package domain

import "testing"

func TestSortLessons(t *testing.T) {
	lessons := []Lesson{
		{ID: "dip", Principle: DependencyInversion, Order: 5},
		{ID: "intro", Order: 0},
		{ID: "ocp", Principle: OpenClosed, Order: 2},
		{ID: "srp", Principle: SingleResponsibility, Order: 1},
	}

	SortLessons(lessons)

	want := []string{"intro", "srp", "ocp", "dip"}
	for i, id := range want {
		if lessons[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, lessons[i].ID, id)
		}
	}
}

func TestSortLessons_TieBreaksByPrinciple(t *testing.T) {
	lessons := []Lesson{
		{ID: "b", Principle: LiskovSubstitution, Order: 3},
		{ID: "a", Principle: OpenClosed, Order: 3},
	}

	SortLessons(lessons)

	if lessons[0].Principle != OpenClosed {
		t.Errorf("same order must fall back to principle rank, got %q first", lessons[0].ID)
	}
}

func TestFindByPrinciple(t *testing.T) {
	lessons := []Lesson{
		{ID: "intro"},
		{ID: "srp", Principle: SingleResponsibility},
	}

	lesson, err := FindByPrinciple(lessons, SingleResponsibility)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lesson.ID != "srp" {
		t.Errorf("got %q, want srp", lesson.ID)
	}

	if _, err := FindByPrinciple(lessons, DependencyInversion); err != ErrLessonNotFound {
		t.Errorf("uncovered principle must return ErrLessonNotFound, got %v", err)
	}
}

func TestLesson_HasQuiz(t *testing.T) {
	if (Lesson{}).HasQuiz() {
		t.Error("lesson without quiz must report false")
	}
	if (Lesson{Quiz: &Quiz{}}).HasQuiz() {
		t.Error("empty quiz must report false")
	}
	if !(Lesson{Quiz: &Quiz{Questions: []Question{{}}}}).HasQuiz() {
		t.Error("quiz with questions must report true")
	}
}
