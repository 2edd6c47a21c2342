package emulator

import (
	"encoding/binary"
	"log"
	"sync"

	"github.com/Fancy2209/shadPS4/amdgpu"
)

// Memory is a flat little-endian guest memory window starting at Base.
// It is polled by the processing goroutine while the guest mutates it, so
// every access takes the lock.
type Memory struct {
	Base uint64 // Guest address of the first byte.

	mu   sync.Mutex
	data []byte
}

var _ amdgpu.Memory = (*Memory)(nil)

// NewMemory creates a zeroed guest memory window.
func NewMemory(base uint64, size int) *Memory {
	return &Memory{
		Base: base,
		data: make([]byte, size),
	}
}

// Size returns the window size in bytes.
func (mem *Memory) Size() int {
	return len(mem.data)
}

func (mem *Memory) index(addr uint64, span int) int {
	if addr < mem.Base || addr+uint64(span) > mem.Base+uint64(len(mem.data)) {
		log.Panicf("emulator: %v", ErrMemoryRange(addr))
	}
	return int(addr - mem.Base)
}

// Read32 returns the word at a guest address.
func (mem *Memory) Read32(addr uint64) uint32 {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	return binary.LittleEndian.Uint32(mem.data[mem.index(addr, 4):])
}

// Write32 stores a word at a guest address.
func (mem *Memory) Write32(addr uint64, value uint32) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	binary.LittleEndian.PutUint32(mem.data[mem.index(addr, 4):], value)
}
