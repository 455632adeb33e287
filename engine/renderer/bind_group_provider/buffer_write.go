package bind_group_provider

import "log"

// BufferWrite is one queued upload into the buffer at Binding on Provider, typically a
// per-frame uniform block such as the camera, wind or fade parameters.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

// Fits reports whether the write is a legal queue write into a buffer of the given size:
// offset and length are multiples of 4 and the data ends inside the buffer.
//
// Parameters:
//   - size: the destination buffer size in bytes
//
// Returns:
//   - bool: true if the write can be submitted
func (w BufferWrite) Fits(size uint64) bool {
	n := uint64(len(w.Data))
	if w.Offset%4 != 0 || n%4 != 0 {
		return false
	}
	return w.Offset <= size && n <= size-w.Offset
}

// Reject logs why a write was dropped. A mismatched uniform struct shows up here
// rather than as a device validation error on the next submit.
//
// Parameters:
//   - size: the destination buffer size in bytes
func (w BufferWrite) Reject(size uint64) {
	label := "<nil>"
	if w.Provider != nil {
		label = w.Provider.Label()
	}
	log.Printf("[BindGroup] dropping %d-byte write at offset %d into %s binding %d (buffer is %d bytes)",
		len(w.Data), w.Offset, label, w.Binding, size)
}
