package historian

// Tracked reports how many matches currently have a running action index.
func (h *Historian) Tracked() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.indices)
}
