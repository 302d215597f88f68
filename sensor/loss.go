package sensor

// lossEpsilon absorbs accumulated dt rounding so a 2s grace at 60Hz expires on tick 120.
const lossEpsilon = 1e-9

type lossTimer struct {
	searching bool
	lost      bool
	remaining float64
}

func (t *lossTimer) advance(dt float64) {
	if !t.searching || dt <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining <= lossEpsilon {
		t.searching = false
		t.lost = true
	}
}

func (t *lossTimer) poll(grace float64) bool {
	if t.lost {
		t.lost = false
		return true
	}
	if t.searching {
		return false
	}
	if grace <= 0 {
		return true
	}
	t.searching = true
	t.remaining = grace
	return false
}

func (t *lossTimer) reset() {
	*t = lossTimer{}
}
