package fsm

import "time"

// PostRebootHoldoff is the default warm-up window a QRTB
// handler idles through after the post-reboot Inform, absorbing a
// vendor quirk where immediate reconfiguration right after reboot is
// rejected by the radio firmware.
const PostRebootHoldoff = 60 * time.Second

// PostRebootInformTimeout bounds how long a handler waits in
// wait_post_reboot_inform for the device to come back after a Reboot
// was issued; past this deadline the handler resets to wait_inform.
const PostRebootInformTimeout = 10 * time.Minute

// Timer is a monotonic deadline. now is injected rather than read from
// the wall clock directly so tests can simulate elapsed time without
// sleeping.
type Timer struct {
	deadline time.Time
	armed    bool
}

// Arm starts the timer, expiring after d has elapsed from now.
func (t *Timer) Arm(now time.Time, d time.Duration) {
	t.deadline = now.Add(d)
	t.armed = true
}

// Expired reports whether the timer is armed and now is at or past its deadline.
func (t *Timer) Expired(now time.Time) bool {
	return t.armed && !now.Before(t.deadline)
}

// Disarm clears the timer.
func (t *Timer) Disarm() {
	t.armed = false
}

// Armed reports whether the timer is currently counting down.
func (t *Timer) Armed() bool {
	return t.armed
}
