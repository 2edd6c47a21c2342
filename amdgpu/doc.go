// Package amdgpu implements the graphics command processor of the emulated
// GPU.
//
// Liverpool owns the register file and a FIFO of submitted command buffers.
// A dedicated processing goroutine drains the FIFO in submission order,
// decoding each buffer packet by packet and applying register writes, draw
// triggers and synchronization side effects through the injected
// collaborators. Submitters never block; WaitGpuIdle provides the drain
// barrier behind which the register file may be read consistently.
package amdgpu
