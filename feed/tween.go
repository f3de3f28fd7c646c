package feed

// Action is what the hub does while a tween runs and once it finishes.
type Action struct {
	nexts    []func(h *Hub)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) addNext(f func(h *Hub)) {
	if a.nexts == nil {
		a.nexts = make([]func(h *Hub), 0)
	}
	a.nexts = append(a.nexts, f)
}

// runTweens advances every tween by dt seconds. Follow-ups of finished tweens
// run after the sweep so a tween started by one never moves in the same tick.
func (h *Hub) runTweens(dt float32) {
	var nexts []func(h *Hub)
	for t, a := range h.tweens {
		current, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(current)
		}
		if finished {
			for _, f := range a.onFinish {
				f()
			}
			nexts = append(nexts, a.nexts...)
			delete(h.tweens, t)
		}
	}
	for _, f := range nexts {
		f(h)
	}
}
