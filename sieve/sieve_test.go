package sieve

import (
	"testing"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/polynomial"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

func TestASequenceInterleavesSigns(t *testing.T) {
	seq := NewASequence(3)
	want := []int64{1, -1, 2, -2, 3, -3}
	for _, w := range want {
		got, ok := seq.Next()
		if !ok || got != w {
			t.Fatalf("Next() = (%d,%v), want (%d,true)", got, ok, w)
		}
	}
	if _, ok := seq.Next(); ok {
		t.Error("expected sequence to be exhausted past valueRange")
	}
}

func TestResumeASequenceReconstructsState(t *testing.T) {
	cases := []struct {
		lastA int64
		want  []int64
	}{
		{0, []int64{1, -1, 2}},
		{2, []int64{-2, 3, -3}},
		{-2, []int64{3, -3, 4}},
	}
	for _, c := range cases {
		seq := ResumeASequence(c.lastA, 10)
		for _, w := range c.want {
			got, ok := seq.Next()
			if !ok || got != w {
				t.Fatalf("ResumeASequence(%d,..).Next() = (%d,%v), want (%d,true)", c.lastA, got, ok, w)
			}
		}
	}
}

func TestTargetSmoothCountUsesFloor(t *testing.T) {
	if got := TargetSmoothCount(5, 10, 10, 10); got != 33 {
		t.Errorf("TargetSmoothCount = %d, want 33 (floor dominates)", got)
	}
	if got := TargetSmoothCount(100, 10, 10, 10); got != 100 {
		t.Errorf("TargetSmoothCount = %d, want 100 (configured dominates)", got)
	}
}

func TestCoordinatorRunFindsSmoothRelations(t *testing.T) {
	n := bigint.NewInt(1649)
	m := bigint.NewInt(7)
	f, err := polynomial.FromBaseM(n, m, 2)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}

	ratPrimes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	algPrimes := ratPrimes

	container := relation.NewContainer()
	progress := NewProgress(50, 40, 5)
	c := NewCoordinator(m, f, 2, ratPrimes, algPrimes, container, progress)

	if err := c.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if container.SmoothCount() < 5 {
		t.Errorf("SmoothCount() = %d, want >= 5", container.SmoothCount())
	}
	for _, r := range container.Smooth() {
		if !r.IsSmooth() {
			t.Errorf("relation (%v,%v) stored as smooth but IsSmooth() false", r.A, r.B)
		}
	}
}

func TestCoordinatorRunParallelFindsSmoothRelations(t *testing.T) {
	n := bigint.NewInt(1649)
	m := bigint.NewInt(7)
	f, err := polynomial.FromBaseM(n, m, 2)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}

	ratPrimes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	algPrimes := ratPrimes

	container := relation.NewContainer()
	progress := NewProgress(50, 40, 5)
	c := NewCoordinator(m, f, 2, ratPrimes, algPrimes, container, progress)

	if err := c.RunParallel(nil, 4); err != nil {
		t.Fatalf("RunParallel: %v", err)
	}
	if container.SmoothCount() < 5 {
		t.Errorf("SmoothCount() = %d, want >= 5", container.SmoothCount())
	}
}
