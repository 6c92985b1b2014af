package agenda

type Hobby struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// Toggle flips the done flag.
func (h *Hobby) Toggle() {
	h.Done = !h.Done
}
