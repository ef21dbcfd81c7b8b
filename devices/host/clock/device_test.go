package clock

import (
	"testing"
	"time"
)

func TestDefaultRate(t *testing.T) {
	d := New(0)

	if want := time.Second / DefaultRate; d.Interval() != want {
		t.Fatalf("want: %v have: %v", want, d.Interval())
	}
}

func TestFrames(t *testing.T) {
	d := New(1000)
	if err := d.Startup(); err != nil {
		t.Fatal(err)
	}
	defer d.Shutdown()

	start := time.Now()
	for i := 0; i < 5; i++ {
		d.Wait()
		d.Update(nil)
	}

	if d.Frames() != 5 {
		t.Fatalf("want: 5 have: %d", d.Frames())
	}

	if time.Since(start) < 4*d.Interval() {
		t.Fatalf("Wait returned too early: %v", time.Since(start))
	}

	if d.FPS() <= 0 {
		t.Fatalf("want positive frame rate; have %v", d.FPS())
	}

	d.Reset()
	if d.Frames() != 0 {
		t.Fatalf("want frame count reset; have %d", d.Frames())
	}
}
