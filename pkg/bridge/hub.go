package bridge

import (
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
)

// Hub publishes messages to all attached writers.
type Hub struct {
	lock    sync.RWMutex
	nextID  int
	writers map[int]PacketWriter
}

// Attach adds a writer. The returned func detaches it.
func (h *Hub) Attach(w PacketWriter) func() {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.writers == nil {
		h.writers = make(map[int]PacketWriter)
	}
	id := h.nextID
	h.nextID++
	h.writers[id] = w
	return func() {
		h.lock.Lock()
		delete(h.writers, id)
		h.lock.Unlock()
	}
}

// Len returns the number of attached writers.
func (h *Hub) Len() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.writers)
}

// Publish encodes msg and writes it to every writer.
// A failing writer is logged and left attached, its owner detaches it.
func (h *Hub) Publish(msg msgs.Message) error {
	pkt, err := msgs.Encode(msg)
	if err != nil {
		return err
	}
	h.lock.RLock()
	writers := make([]PacketWriter, 0, len(h.writers))
	for _, w := range h.writers {
		writers = append(writers, w)
	}
	h.lock.RUnlock()
	for _, w := range writers {
		if err := w.WritePacket(pkt); err != nil {
			glog.V(1).Infof("publish error: %v", err)
		}
	}
	return nil
}
