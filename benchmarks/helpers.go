// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/comalice/eventx"
	"github.com/comalice/eventx/profile"
)

// benchCode is the event code the counting dispatchers listen on.
const benchCode = 1000

// NewCountingDispatcher creates a dispatcher with a single listener on
// benchCode that increments the returned counter.
func NewCountingDispatcher(opts ...eventx.Option) (*eventx.Dispatcher, *int64) {
	d := eventx.New(opts...)
	var count int64
	d.AddListener(benchCode, eventx.ListenerFunc(func(code, param int) {
		atomic.AddInt64(&count, 1)
	}))
	return d, &count
}

// GenProfile creates a profile with n generated code table entries.
func GenProfile(n int) profile.Profile {
	if n < 1 {
		n = 1
	}
	p := profile.Default()
	p.Name = fmt.Sprintf("bench_%d", n)
	p.Codes = make(map[string]int, n)
	for i := 0; i < n; i++ {
		p.Codes[fmt.Sprintf("code%d", i)] = 1000 + i
	}
	return p
}

// GenProfileYAML generates YAML bytes for a profile with n code entries.
func GenProfileYAML(n int) []byte {
	p := GenProfile(n)
	data, err := yaml.Marshal(p)
	if err != nil {
		panic(err)
	}
	return data
}
