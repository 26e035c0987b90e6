// Package bufpool recycles the byte buffers used to render attribute text.
package bufpool

import (
	"bytes"
	"sync"
)

// maxRetained caps the capacity of buffers returned to the pool, so one huge
// attribute list does not pin its buffer for the lifetime of the process.
const maxRetained = 64 << 10

type Pool struct {
	pool sync.Pool
}

func New(initialSize int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, initialSize))
			},
		},
	}
}

func (p *Pool) Get() *bytes.Buffer {
	return p.pool.Get().(*bytes.Buffer)
}

func (p *Pool) Put(buf *bytes.Buffer) {
	if buf.Cap() > maxRetained {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}
