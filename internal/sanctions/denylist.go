package sanctions

import (
	"strings"
	"sync/atomic"
)

// Denylist is the local set of sanctioned addresses, replaceable at runtime.
type Denylist struct {
	set atomic.Pointer[map[string]struct{}]
}

func NewDenylist(addresses []string) *Denylist {
	d := &Denylist{}
	d.Replace(addresses)
	return d
}

func (d *Denylist) Replace(addresses []string) {
	set := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		set[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	d.set.Store(&set)
}

func (d *Denylist) Contains(address string) bool {
	if d == nil {
		return false
	}
	_, ok := (*d.set.Load())[strings.ToLower(address)]
	return ok
}

func (d *Denylist) Len() int {
	if d == nil {
		return 0
	}
	return len(*d.set.Load())
}
