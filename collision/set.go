package collision

// colliderSet is a dense membership set. Iteration walks the dense slice,
// removal swaps the last member into the hole.
type colliderSet struct {
	dense []*Collider
	index map[*Collider]int
}

func (s *colliderSet) has(c *Collider) bool {
	_, ok := s.index[c]
	return ok
}

func (s *colliderSet) add(c *Collider) bool {
	if s.has(c) {
		return false
	}
	if s.index == nil {
		s.index = make(map[*Collider]int)
	}
	s.index[c] = len(s.dense)
	s.dense = append(s.dense, c)
	return true
}

func (s *colliderSet) remove(c *Collider) bool {
	idx, ok := s.index[c]
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[idx] = moved
	s.index[moved] = idx
	s.dense[last] = nil
	s.dense = s.dense[:last]
	delete(s.index, c)
	return true
}

func (s *colliderSet) len() int {
	return len(s.dense)
}
