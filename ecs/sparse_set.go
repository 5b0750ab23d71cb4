package ecs

// sparseSet stores one component type keyed by entity id. Values are kept
// densely packed; sparse maps an id to its dense index plus one.
type sparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

func (s *sparseSet) has(e Entity) bool {
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1] - 1
	return idx >= 0 && s.dense[idx] == e
}

func (s *sparseSet) get(e Entity) (any, bool) {
	if !s.has(e) {
		return nil, false
	}
	return s.values[s.sparse[e.id()-1]-1], true
}

func (s *sparseSet) set(e Entity, v any) {
	id := int(e.id())
	for id > len(s.sparse) {
		s.sparse = append(s.sparse, 0)
	}
	if idx := s.sparse[id-1] - 1; idx >= 0 {
		// the slot may still hold a stale generation of this id
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

func (s *sparseSet) remove(e Entity) bool {
	if !s.has(e) {
		return false
	}
	s.drop(e.id())
	return true
}

// drop removes whatever generation currently occupies id.
func (s *sparseSet) drop(id entityID) {
	if int(id) > len(s.sparse) {
		return
	}
	idx := s.sparse[id-1] - 1
	if idx < 0 {
		return
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()-1] = idx + 1

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = 0
}

func (s *sparseSet) len() int {
	return len(s.dense)
}
