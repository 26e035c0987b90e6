package taimeta

import (
	"context"
	"sync/atomic"

	"github.com/jackc/puddle/v2"
)

// SlotPool hands out attribute slots: values allocated with Alloc for one
// attribute, each owned by exactly one caller at a time.
//
// Values are not synchronized internally; a slot is how callers serialize
// access to one. Released slots keep their buffers, so a slot can be reused
// for DeserializeAttribute or DeepCopy without reallocating.
type SlotPool struct {
	meta *AttrMetadata
	pool *puddle.Pool[*Attribute]

	allocated atomic.Int64
	freed     atomic.Int64
}

// NewSlotPool creates a pool of at most maxSize slots for the attribute
// described by meta. Slots are allocated lazily with info.
func NewSlotPool(meta *AttrMetadata, maxSize int32, info *AllocInfo) (*SlotPool, error) {
	if meta == nil {
		return nil, invalidParameter("nil metadata")
	}
	p := &SlotPool{meta: meta}

	var allocInfo AllocInfo
	if info != nil {
		allocInfo = *info
	}

	pool, err := puddle.NewPool(&puddle.Config[*Attribute]{
		Constructor: func(ctx context.Context) (*Attribute, error) {
			attr := &Attribute{}
			if err := Alloc(meta, attr, &allocInfo); err != nil {
				return nil, err
			}
			p.allocated.Add(1)
			return attr, nil
		},
		Destructor: func(attr *Attribute) {
			_ = Free(meta, attr)
			p.freed.Add(1)
		},
		MaxSize: maxSize,
	})
	if err != nil {
		return nil, invalidParameter("slot pool: %v", err)
	}
	p.pool = pool
	return p, nil
}

// Metadata returns the metadata of the pool's attribute.
func (p *SlotPool) Metadata() *AttrMetadata {
	return p.meta
}

// Acquire returns an idle slot, allocating one if the pool is not full, or
// waits for a slot to be released. It fails when ctx is done or the pool is
// closed.
func (p *SlotPool) Acquire(ctx context.Context) (*Slot, error) {
	res, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &Slot{res: res}, nil
}

// Close frees every idle slot and waits for acquired slots to be released
// and freed.
func (p *SlotPool) Close() {
	p.pool.Close()
}

// SlotStats is a snapshot of pool usage.
type SlotStats struct {
	AcquireCount      uint64 // Total successful acquires
	AcquireWaitCount  uint64 // Acquires that had to wait for a slot
	Allocated         uint64 // Slots allocated over the pool's lifetime
	Freed             uint64 // Slots freed over the pool's lifetime
	AcquireErrors     uint64 // Acquires canceled by their context
	AcquireWaitTimeNs uint64 // Total nanoseconds spent waiting

	TotalSlots    int32 // Slots currently allocated (acquired + idle)
	IdleSlots     int32 // Slots ready to be acquired
	AcquiredSlots int32 // Slots currently owned by a caller
}

// Stats returns a snapshot of pool usage.
func (p *SlotPool) Stats() SlotStats {
	s := p.pool.Stat()
	return SlotStats{
		AcquireCount:      uint64(s.AcquireCount()),
		AcquireWaitCount:  uint64(s.EmptyAcquireCount()),
		Allocated:         uint64(p.allocated.Load()),
		Freed:             uint64(p.freed.Load()),
		AcquireErrors:     uint64(s.CanceledAcquireCount()),
		AcquireWaitTimeNs: uint64(s.EmptyAcquireWaitTime().Nanoseconds()),
		TotalSlots:        s.TotalResources(),
		IdleSlots:         s.IdleResources(),
		AcquiredSlots:     s.AcquiredResources(),
	}
}

// Slot is exclusive ownership of one allocated attribute value.
type Slot struct {
	res *puddle.Resource[*Attribute]
}

// Attribute returns the slot's attribute. It must not be used after Release
// or Destroy.
func (s *Slot) Attribute() *Attribute {
	return s.res.Value()
}

// Release returns the slot to the pool.
func (s *Slot) Release() {
	s.res.Release()
}

// Destroy frees the slot's value and removes it from the pool, e.g. after
// the value was replaced by one of another size.
func (s *Slot) Destroy() {
	s.res.Destroy()
}
