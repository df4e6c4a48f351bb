package body

// SleepListener is notified when a body falls asleep or wakes, per
// spec.md §6's Body API events sleepEnter()/sleepExit().
type SleepListener func(b *Body)

// CollisionListener is notified once per tick for every contact this body
// participated in (spec.md §6, collision(contact)).
type CollisionListener func(c *Contact)

func (b *Body) OnSleepEnter(l SleepListener) {
	b.sleepEnterListeners = append(b.sleepEnterListeners, l)
}

func (b *Body) OnSleepExit(l SleepListener) {
	b.sleepExitListeners = append(b.sleepExitListeners, l)
}

func (b *Body) OnCollision(l CollisionListener) {
	b.collisionListeners = append(b.collisionListeners, l)
}

func (b *Body) emitSleepEnter() {
	for _, l := range b.sleepEnterListeners {
		l(b)
	}
}

func (b *Body) emitSleepExit() {
	for _, l := range b.sleepExitListeners {
		l(b)
	}
}

// EmitCollision is called by the engine once per contact, for each of the
// two participating bodies.
func (b *Body) EmitCollision(c *Contact) {
	for _, l := range b.collisionListeners {
		l(c)
	}
}
