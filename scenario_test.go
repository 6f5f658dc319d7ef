package list

import (
	"testing"

	. "github.com/karlseguin/expect"
)

type DoubleScenarioTests struct {
}

func Test_DoubleScenarios(t *testing.T) {
	Expectify(new(DoubleScenarioTests), t)
}

func (_ *DoubleScenarioTests) BuildsRemovesAndChecks() {
	l := NewDouble[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)

	Expect(l.Len()).To.Equal(3)
	Expect(l.Get(0)).To.Equal(0)
	Expect(l.Get(1)).To.Equal(1)
	Expect(l.Get(2)).To.Equal(2)

	l.Remove(1)
	Expect(l.Len()).To.Equal(2)
	Expect(l.Get(0)).To.Equal(0)
	Expect(l.Get(1)).To.Equal(2)

	_, err := l.At(5)
	oor, ok := err.(*OutOfRangeError)
	Expect(ok).To.Equal(true)
	Expect(oor.Index).To.Equal(5)
	Expect(oor.Size).To.Equal(2)
}

func (_ *DoubleScenarioTests) SizeTracksPushesAndPops() {
	l := NewDouble[string]()
	Expect(l.Empty()).To.Equal(true)

	l.PushBack("a")
	l.PushFront("b")
	l.PushBack("c")
	Expect(l.Len()).To.Equal(3)
	Expect(l.Empty()).To.Equal(false)

	l.PopFront()
	l.PopBack()
	Expect(l.Len()).To.Equal(1)

	l.PopBack()
	Expect(l.Len()).To.Equal(0)
	Expect(l.Empty()).To.Equal(true)

	// pops on an empty list never drive the size negative
	l.PopFront()
	l.PopBack()
	Expect(l.Len()).To.Equal(0)
}

func (_ *DoubleScenarioTests) ForwardAndReverseAreMirrored() {
	l := NewDouble[int]()
	for i := 1; i <= 5; i++ {
		l.PushBack(i)
	}

	var forward []int
	for it := l.CBegin(); !it.Equal(l.CEnd()); it.Next() {
		forward = append(forward, it.Value())
	}

	var backward []int
	for it := l.CRBegin(); !it.Equal(l.CREnd()); it.Next() {
		backward = append(backward, it.Value())
	}

	Expect(len(forward)).To.Equal(l.Len())
	Expect(len(backward)).To.Equal(l.Len())
	for i, v := range forward {
		Expect(backward[len(backward)-1-i]).To.Equal(v)
	}
}

func (_ *DoubleScenarioTests) CloneIsolatesAndTakeEmpties() {
	l := NewDouble[int]()
	l.PushBack(1)
	l.PushBack(2)

	c := l.Clone()
	c.Set(0, 100)
	c.PushBack(3)
	Expect(l.Get(0)).To.Equal(1)
	Expect(l.Len()).To.Equal(2)
	Expect(c.Len()).To.Equal(3)

	moved := NewDouble[int]()
	moved.Take(c)
	Expect(c.Len()).To.Equal(0)
	Expect(c.Empty()).To.Equal(true)
	Expect(moved.Len()).To.Equal(3)
	Expect(moved.Get(0)).To.Equal(100)
}

type SingleScenarioTests struct {
}

func Test_SingleScenarios(t *testing.T) {
	Expectify(new(SingleScenarioTests), t)
}

func (_ *SingleScenarioTests) PopBackReestablishesTheTail() {
	l := NewSingle[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	l.PopBack()
	Expect(l.Len()).To.Equal(2)
	Expect(l.Back()).To.Equal(2)

	// the next append must land after the re-derived tail
	l.PushBack(4)
	Expect(l.Len()).To.Equal(3)
	Expect(l.Get(0)).To.Equal(1)
	Expect(l.Get(1)).To.Equal(2)
	Expect(l.Get(2)).To.Equal(4)
	Expect(l.Back()).To.Equal(4)
}

func (_ *SingleScenarioTests) CheckedAndUncheckedAccessAgree() {
	l := NewSingle[int]()
	l.PushBack(5)
	l.PushBack(6)

	for i := 0; i < l.Len(); i++ {
		value, err := l.At(i)
		Expect(err).To.Equal(nil)
		Expect(value).To.Equal(l.Get(i))
	}

	_, err := l.At(2)
	oor, ok := err.(*OutOfRangeError)
	Expect(ok).To.Equal(true)
	Expect(oor.Index).To.Equal(2)
	Expect(oor.Size).To.Equal(2)
}
