package memory

// IOHandler gates and observes stores into an IOMemory register bank.
type IOHandler interface {
	// CanWrite is consulted before the bank is touched. Returning false
	// vetoes the store: the bank stays unchanged, OnWrite does not fire,
	// and the write still reports success to the caller.
	CanWrite(mem []byte, address, size uint32) bool

	// OnWrite runs after the bank has been mutated; mem shows the bytes
	// already in place.
	OnWrite(mem []byte, address, size uint32)
}

// IOMemory models a memory-mapped device: a flat register bank whose
// stores are filtered and observed by a handler. Reads pass straight
// through to the bank.
type IOMemory struct {
	mem     RAM
	handler IOHandler
}

var _ StorageMut = (*IOMemory)(nil)

// NewIOMemory returns a zeroed register bank of the given size, guarded
// by handler.
func NewIOMemory(size uint32, handler IOHandler) *IOMemory {
	return NewIOMemoryOver(NewRAM(size), handler)
}

// NewIOMemoryOver wraps an existing bank, keeping its contents. The
// caller keeps its reference and may still mutate the bank directly.
func NewIOMemoryOver(mem RAM, handler IOHandler) *IOMemory {
	return &IOMemory{
		mem:     mem,
		handler: handler,
	}
}

func (im *IOMemory) Length() uint32 {
	return im.mem.Length()
}

func (im *IOMemory) CheckRange(address, length uint32) bool {
	return im.mem.CheckRange(address, length)
}

func (im *IOMemory) Slice(address, length uint32) ([]byte, error) {
	return im.mem.Slice(address, length)
}

// SliceMut is refused: a raw mutable window would bypass the handler.
func (im *IOMemory) SliceMut(address, length uint32) ([]byte, error) {
	return nil, ErrNoDirectAccess
}

func (im *IOMemory) Write(address, size, value uint32) error {
	if !im.handler.CanWrite(im.mem, address, size) {
		// Vetoed: invisible at the storage contract boundary.
		return nil
	}
	if err := im.mem.Write(address, size, value); err != nil {
		return err
	}
	im.handler.OnWrite(im.mem, address, size)
	return nil
}

// DelegateIOHandler adapts plain funcs to the IOHandler interface. A nil
// CanWrite permits everything; a nil OnWrite ignores notifications.
type DelegateIOHandler struct {
	CanWriteFunc func(mem []byte, address, size uint32) bool
	OnWriteFunc  func(mem []byte, address, size uint32)
}

var _ IOHandler = (*DelegateIOHandler)(nil)

func (dh *DelegateIOHandler) CanWrite(mem []byte, address, size uint32) bool {
	if dh.CanWriteFunc == nil {
		return true
	}
	return dh.CanWriteFunc(mem, address, size)
}

func (dh *DelegateIOHandler) OnWrite(mem []byte, address, size uint32) {
	if dh.OnWriteFunc != nil {
		dh.OnWriteFunc(mem, address, size)
	}
}
