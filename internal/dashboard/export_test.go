package dashboard

import "time"

func (d *Dashboard) SetNow(fn func() time.Time) {
	d.now = fn
}
