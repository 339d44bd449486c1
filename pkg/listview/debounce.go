package listview

import (
	"sync"
	"time"
)

// Debounce returns a function that delays invoking fn until wait has
// elapsed since the last call. Only the final call in a burst fires.
func Debounce(wait time.Duration, fn func()) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
}
