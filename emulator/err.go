package emulator

import (
	"github.com/Fancy2209/shadPS4/translate"
)

var f = translate.From

// ErrMemoryRange is a guest address outside the memory window.
type ErrMemoryRange uint64

func (err ErrMemoryRange) Error() string {
	return f("address %#x outside guest memory", uint64(err))
}
