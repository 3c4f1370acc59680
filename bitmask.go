package kura

// bitmask256 is the key of an archetype signature: bit i is set when
// component i is stored. A set of components maps to one mask however its
// members were ordered, so World indexes archetypes by it directly.
type bitmask256 [4]uint64

// set marks id as a member.
func (m *bitmask256) set(id ComponentID) {
	m[id>>6] |= 1 << (id & 63)
}

// contains reports whether m is a superset of sub, which is how a query
// decides that an archetype stores every component it asks for.
func (m bitmask256) contains(sub bitmask256) bool {
	for i, word := range sub {
		if m[i]&word != word {
			return false
		}
	}
	return true
}

// containsBit reports whether id is a member. Spawning uses it to reject
// sets that name a component twice.
func (m bitmask256) containsBit(id ComponentID) bool {
	return m[id>>6]&(1<<(id&63)) != 0
}
