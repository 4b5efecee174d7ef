package game

// Cycler walks a ring of seat ids. Reversing flips the ring in place and keeps
// the pointer where it is, so the seat under the pointer usually changes.
type Cycler struct {
	elements []int
	current  int
}

func NewCycler(elements []int) *Cycler {
	return &Cycler{
		elements: elements,
		current:  0,
	}
}

func (c *Cycler) Current() int {
	return c.elements[c.current]
}

// Position is the pointer itself, an index into the ring.
func (c *Cycler) Position() int {
	return c.current
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

func (c *Cycler) ForEach(function func(int)) {
	for _, element := range c.elements {
		function(element)
	}
}

// Next moves the pointer forward past every element for which skip is true.
// It stops after one full lap; if every element is skipped the pointer ends
// where it started.
func (c *Cycler) Next(skip func(int) bool) int {
	elementCount := len(c.elements)
	for i := 0; i < elementCount; i++ {
		c.current = (c.current + 1) % elementCount
		if skip == nil || !skip(c.elements[c.current]) {
			break
		}
	}
	return c.elements[c.current]
}

func (c *Cycler) Reverse() {
	for i, j := 0, len(c.elements)-1; i < j; i, j = i+1, j-1 {
		c.elements[i], c.elements[j] = c.elements[j], c.elements[i]
	}
}
