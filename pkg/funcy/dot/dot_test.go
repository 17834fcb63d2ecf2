package dot

import (
	"testing"
	"unicode/utf8"

	"github.com/Inityx/funcy/pkg/funcy"
)

func TestCall(t *testing.T) {
	t.Parallel()
	if got := Call("hello", utf8.RuneCountInString); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestCallRef(t *testing.T) {
	t.Parallel()
	firstHalf := func(v []int) []int { return v[:len(v)/2] }
	secondHalf := func(v []int) []int { return v[len(v)/2:] }

	vec := []int{1, 2, 3, 4, 5}
	fst := CallRef(&vec, firstHalf)
	snd := CallRef(&vec, secondHalf)

	if len(fst) != 2 || fst[0] != 1 || fst[1] != 2 {
		t.Fatalf("expected [1 2], got %v", fst)
	}
	if len(snd) != 3 || snd[0] != 3 || snd[2] != 5 {
		t.Fatalf("expected [3 4 5], got %v", snd)
	}
	if len(vec) != 5 {
		t.Fatalf("expected receiver to remain usable, got %v", vec)
	}
}

func TestCallRef_ReceiverUnchanged(t *testing.T) {
	t.Parallel()
	n := 10
	got := CallRef(&n, func(v int) int {
		v *= 3
		return v
	})

	if got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if n != 10 {
		t.Fatalf("expected receiver to be unchanged, got %d", n)
	}
}

func TestCallMut(t *testing.T) {
	t.Parallel()
	popFront := func(v *[]int) int {
		head := (*v)[0]
		*v = (*v)[1:]
		return head
	}

	vec := []int{4, 5, 6}
	if got := CallMut(&vec, popFront); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := CallMut(&vec, popFront); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if len(vec) != 1 || vec[0] != 6 {
		t.Fatalf("expected [6] to remain, got %v", vec)
	}
}

func TestCallDeref(t *testing.T) {
	t.Parallel()
	box := funcy.NewBox("hello")

	if got := CallDeref(box, utf8.RuneCountInString); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if *box.Deref() != "hello" {
		t.Fatalf("expected target unchanged, got %q", *box.Deref())
	}
}

func TestCallDerefMut(t *testing.T) {
	t.Parallel()
	box := funcy.NewBox(5)

	got := CallDerefMut(box, func(v *int) int {
		half := *v / 2
		*v -= half
		return half
	})
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if *box.Deref() != 3 {
		t.Fatalf("expected target 3 after mutation, got %d", *box.Deref())
	}
}
