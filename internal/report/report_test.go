package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"parlife/internal/sims/life"
)

func TestWriteIncludesTimingOnlyWhenAsked(t *testing.T) {
	s := Summary{Size: 12, Workers: 4, ChunkSize: 6, Steps: 10, Alive: 50, Dead: 1390, Final: 5, Elapsed: 20 * time.Millisecond}

	var buf bytes.Buffer
	if err := Write(&buf, s, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"12x12", "4 (chunk 6x6)", "alive cells", "1390"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "elapsed") {
		t.Fatalf("timing printed without timing mode:\n%s", out)
	}

	buf.Reset()
	if err := Write(&buf, s, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "per step") || !strings.Contains(buf.String(), "2ms") {
		t.Fatalf("timing rows missing:\n%s", buf.String())
	}
}

func TestFromEngine(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Workers = 9
	e, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	s := FromEngine(e, time.Second)
	if s.Workers != 9 || s.ChunkSize != 4 || s.Steps != 3 || s.Size != 12 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Alive+s.Dead != 3*144 {
		t.Fatalf("alive+dead = %d, want %d", s.Alive+s.Dead, 3*144)
	}
	if s.Final != 5 {
		t.Fatalf("glider population = %d, want 5", s.Final)
	}
}
