package registry

import "testing"

func TestTaintSet_ContainsInsertRemove(t *testing.T) {
	s := NewTaintSet()

	if s.Contains(5) {
		t.Error("fresh set should not contain 5")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}

	// Idempotent insert.
	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should still contain 5 after duplicate insert")
	}

	s.Remove(5)
	if s.Contains(5) {
		t.Error("set should not contain 5 after remove")
	}

	// Removing an absent fd is not an error.
	s.Remove(5)
	s.Remove(999)
}

func TestTaintSet_Independence(t *testing.T) {
	s := NewTaintSet()
	s.Insert(3)
	s.Insert(67) // 67 % bucketCount == 3: same bucket as 3 under reentrantHash

	if !s.Contains(3) || !s.Contains(67) {
		t.Fatal("both descriptors should be members")
	}

	s.Remove(3)
	if s.Contains(3) {
		t.Error("3 should be gone")
	}
	if !s.Contains(67) {
		t.Error("67 should still be present after removing 3")
	}
}

func TestRegistry_CopyTaint(t *testing.T) {
	r := New()
	r.DelayFDs.Insert(4)
	r.ErrFDs.Insert(4)

	r.CopyTaint(4, 9)

	if !r.DelayFDs.Contains(9) {
		t.Error("newfd should inherit delay taint")
	}
	if !r.ErrFDs.Contains(9) {
		t.Error("newfd should inherit error taint")
	}
}

func TestRegistry_CopyTaint_NoSourceTaint(t *testing.T) {
	r := New()

	r.CopyTaint(4, 9)

	if r.DelayFDs.Contains(9) || r.ErrFDs.Contains(9) {
		t.Error("untainted oldfd should not taint newfd")
	}
}

func TestRegistry_CopyTaint_PreservesExistingNewfdTaint(t *testing.T) {
	// CopyTaint is a pure union. If newfd already carries a taint
	// unrelated to oldfd, dup2/dup3 must not clear it.
	r := New()
	r.ErrFDs.Insert(9)

	r.CopyTaint(4, 9)

	if !r.ErrFDs.Contains(9) {
		t.Error("dup2/dup3 must not clear newfd's pre-existing taint")
	}
}

func TestRegistry_Forget(t *testing.T) {
	r := New()
	r.DelayFDs.Insert(7)
	r.ErrFDs.Insert(7)

	r.Forget(7)

	if r.DelayFDs.Contains(7) || r.ErrFDs.Contains(7) {
		t.Error("Forget should remove fd from both sets")
	}

	// Forgetting an untainted/closed fd is not an error.
	r.Forget(7)
}

func TestGlobal_ReturnsSameInstance(t *testing.T) {
	a := Global()
	b := Global()
	if a != b {
		t.Error("Global() should return the same singleton on every call")
	}
}

func TestTaintSet_ConcurrentAccess(t *testing.T) {
	s := NewTaintSet()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func(fd int) {
			for j := 0; j < 100; j++ {
				s.Insert(fd)
				s.Contains(fd)
				s.Remove(fd)
			}
			done <- struct{}{}
		}(i)
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
