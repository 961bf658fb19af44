package protracktor

import "testing"

func TestGetPeriodNoNoteIsZero(t *testing.T) {
	c := &channel{}
	if p := c.getPeriod(0, 0); p != 0 {
		t.Errorf("getPeriod with no note = %d, want 0", p)
	}
}

func TestGetPeriodMatchesTableAtFinetuneZero(t *testing.T) {
	c := &channel{note: 25}
	if got, want := c.getPeriod(0, 0), periodTable[0][24]; got != want {
		t.Errorf("getPeriod(0,0) = %d, want %d", got, want)
	}
}

func TestGetPeriodFineOffsCarriesIntoOffs(t *testing.T) {
	c := &channel{note: 25, fineTune: 7}
	// fineTune 7 + fineOffs 1 = 8, which normalizes to -8 one semitone up.
	got := c.getPeriod(0, 1)
	want := periodTable[8&0x0F][25] // idx = note+offs-1 = 25+1-1 = 25
	if got != want {
		t.Errorf("getPeriod(0,1) = %d, want %d", got, want)
	}
}

func TestGetPeriodClampsNoteIndexRange(t *testing.T) {
	c := &channel{note: 1}
	if got := c.getPeriod(-5, 0); got != periodTable[0][0] {
		t.Errorf("getPeriod clamped low = %d, want %d", got, periodTable[0][0])
	}

	c = &channel{note: 60}
	if got := c.getPeriod(5, 0); got != periodTable[0][59] {
		t.Errorf("getPeriod clamped high = %d, want %d", got, periodTable[0][59])
	}
}

func TestSetPeriodNoOpWithoutNote(t *testing.T) {
	c := &channel{period: 999}
	c.setPeriod(0, 0)
	if c.period != 999 {
		t.Errorf("setPeriod with no note changed period to %d", c.period)
	}
}

func TestClampVolume(t *testing.T) {
	cases := map[int]int{-5: 0, 0: 0, 32: 32, 64: 64, 100: 64}
	for in, want := range cases {
		if got := clampVolume(in); got != want {
			t.Errorf("clampVolume(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestClampPeriodFloorAndCeil(t *testing.T) {
	if got := clampPeriodFloor(50); got != 113 {
		t.Errorf("clampPeriodFloor(50) = %d, want 113", got)
	}
	if got := clampPeriodFloor(200); got != 200 {
		t.Errorf("clampPeriodFloor(200) = %d, want 200", got)
	}
	if got := clampPeriodCeil(900); got != 856 {
		t.Errorf("clampPeriodCeil(900) = %d, want 856", got)
	}
	if got := clampPeriodCeil(200); got != 200 {
		t.Errorf("clampPeriodCeil(200) = %d, want 200", got)
	}
}
