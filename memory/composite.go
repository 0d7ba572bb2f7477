package memory

import (
	"cmp"
	"math"
	"slices"
)

// fragment is one mounted storage region. The id is stable for the life
// of the mount; the registry resolves keys through it rather than through
// positions in the fragment list, so unmounting one key never invalidates
// another.
type fragment struct {
	id      uint64
	base    uint32
	storage StorageMut
}

func (frag *fragment) upper() uint64 {
	return uint64(frag.base) + uint64(frag.storage.Length())
}

// Composite presents independently-owned storage fragments as one
// fragmented address space. Each fragment occupies [base, base+length) and
// fragments never overlap. Gaps between fragments are unaddressable but
// still count toward Length, which is the upper bound of the
// highest-addressed fragment.
//
// A Composite is itself a StorageMut, so one may be mounted as a fragment
// of another. Lookup cost grows linearly with nesting depth; flattening
// into a single Composite is preferable.
type Composite struct {
	fragments []fragment // sorted by base address
	registry  map[string]uint64
	lastID    uint64
}

var _ StorageMut = (*Composite)(nil)

// NewComposite returns an empty composite memory.
func NewComposite() *Composite {
	return &Composite{
		registry: map[string]uint64{},
	}
}

// Mount inserts frag at the given base address, registered under key for
// a later Unmount. A duplicate key is reported before any geometry is
// considered. A fragment that would overlap a mounted range, or whose
// upper bound would not fit the 32-bit address space, is rejected with
// ErrFragmentIntersection; the composite is unchanged on any failure.
func (cm *Composite) Mount(address uint32, key string, frag StorageMut) error {
	if _, ok := cm.registry[key]; ok {
		return ErrKeyExists
	}

	upper := uint64(address) + uint64(frag.Length())
	if upper > math.MaxUint32 {
		return ErrFragmentIntersection
	}

	index, err := cm.findMountIndex(address, uint32(upper))
	if err != nil {
		return err
	}

	cm.lastID++
	cm.fragments = slices.Insert(cm.fragments, index, fragment{
		id:      cm.lastID,
		base:    address,
		storage: frag,
	})
	cm.registry[key] = cm.lastID

	return nil
}

// Unmount removes the fragment registered under key and returns it to the
// caller. The second unmount of the same key reports false.
func (cm *Composite) Unmount(key string) (StorageMut, bool) {
	id, ok := cm.registry[key]
	if !ok {
		return nil, false
	}
	delete(cm.registry, key)

	for n, frag := range cm.fragments {
		if frag.id == id {
			cm.fragments = slices.Delete(cm.fragments, n, n+1)
			return frag.storage, true
		}
	}

	return nil, false
}

// findMountIndex locates the insertion index for a new fragment spanning
// [address, upperBound) in one linear pass over the address-ordered
// fragment list. Mount and unmount are rare next to tick-rate accesses,
// so the scan is acceptable.
func (cm *Composite) findMountIndex(address, upperBound uint32) (int, error) {
	for n := range cm.fragments {
		frag := &cm.fragments[n]
		if frag.base >= address {
			if uint64(upperBound) > uint64(frag.base) {
				return 0, ErrFragmentIntersection
			}
			return n, nil
		}
		if frag.upper() > uint64(address) {
			return 0, ErrFragmentIntersection
		}
	}
	return len(cm.fragments), nil
}

// locate finds the fragment with the greatest base address not above the
// requested address and translates to a fragment-local offset. Whether
// the local offset is actually covered is left to the fragment itself.
func (cm *Composite) locate(address uint32) (StorageMut, uint32, bool) {
	n, found := slices.BinarySearchFunc(cm.fragments, address,
		func(frag fragment, addr uint32) int { return cmp.Compare(frag.base, addr) })
	if !found {
		if n == 0 {
			return nil, 0, false
		}
		n--
	}

	frag := &cm.fragments[n]
	return frag.storage, address - frag.base, true
}

func (cm *Composite) Length() uint32 {
	if len(cm.fragments) == 0 {
		return 0
	}
	last := &cm.fragments[len(cm.fragments)-1]
	return uint32(last.upper())
}

func (cm *Composite) CheckRange(address, length uint32) bool {
	frag, local, ok := cm.locate(address)
	return ok && frag.CheckRange(local, length)
}

func (cm *Composite) Slice(address, length uint32) ([]byte, error) {
	frag, local, ok := cm.locate(address)
	if !ok {
		return nil, ErrOutOfRange
	}
	return frag.Slice(local, length)
}

func (cm *Composite) SliceMut(address, length uint32) ([]byte, error) {
	frag, local, ok := cm.locate(address)
	if !ok {
		return nil, ErrOutOfRange
	}
	return frag.SliceMut(local, length)
}

func (cm *Composite) Write(address, size, value uint32) error {
	frag, local, ok := cm.locate(address)
	if !ok {
		return ErrOutOfRange
	}
	return frag.Write(local, size, value)
}
