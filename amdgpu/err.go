package amdgpu

import (
	"errors"

	"github.com/Fancy2209/shadPS4/translate"
)

var f = translate.From

var (
	// Stream errors
	ErrCmdListEmpty  = errors.New(f("empty command list"))
	ErrWaitEngine    = errors.New(f("wait_mem engine is not the graphics engine"))
	ErrWriteDataDst  = errors.New(f("write_data destination not supported"))
	ErrWriteDataMode = errors.New(f("write_data single-address mode not supported"))
	ErrNoMemory      = errors.New(f("no memory collaborator attached"))
)

// ErrStream locates a stream error by its word offset in the command list.
type ErrStream struct {
	Offset int
	Err    error
}

func (err ErrStream) Error() string {
	return f("word %d: %v", err.Offset, err.Err)
}

func (err ErrStream) Unwrap() error {
	return err.Err
}
