package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerAggregatesByName(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("lex")
	done("tokens=3")
	idx := tm.Begin("parse")
	tm.End(idx, "")
	tm.Track("lex")("")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].Name != "lex" || r.Phases[0].Count != 2 || r.Phases[0].Note != "tokens=3" {
		t.Errorf("lex = %+v", r.Phases[0])
	}
	if r.Phases[1].Name != "parse" || r.Phases[1].Count != 1 {
		t.Errorf("parse = %+v", r.Phases[1])
	}

	s := tm.Summary()
	for _, want := range []string{"timings:\n", "  lex ", "x2", "// tokens=3", "  total "} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestTimerConcurrentAndNil(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Track("sema")("")
		}()
	}
	wg.Wait()
	if r := tm.Report(); len(r.Phases) != 1 || r.Phases[0].Count != 8 {
		t.Errorf("report = %+v", r)
	}

	var nilTimer *Timer
	nilTimer.Track("x")("")
	if r := nilTimer.Report(); len(r.Phases) != 0 {
		t.Errorf("nil timer report = %+v", r)
	}
	tm.End(99, "")
}
