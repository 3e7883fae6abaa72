package core

// AddCity inserts a new, isolated city named name.
//
// Errors:
//   - ErrEmptyCityName if name == ""
//   - ErrInvalidCityName if name contains ';' or a byte in [0,31]
//   - ErrRoadExists-adjacent case: returns (existing city, nil) rather
//     than an error — callers that need "must not already exist" check
//     HasCity first (mirrors AddRoad's own create-if-missing convention,
//     see mapops.AddRoad).
func (m *Map) AddCity(name string) (*City, error) {
	if err := validateCityName(name); err != nil {
		return nil, err
	}

	if existing, ok := m.cities.Get(name); ok {
		return existing, nil
	}

	c := newCity(name)
	m.cities.Set(name, c)
	m.citiesNum++

	return c, nil
}

// RemoveCity deletes the city named name and detaches every road incident
// to it from the other endpoint's neighbour table. Routes that use those
// roads are not updated — callers orchestrating a route-preserving
// deletion must repair/reroute routes BEFORE calling RemoveCity; core
// itself enforces no route invariants.
func (m *Map) RemoveCity(name string) error {
	c, ok := m.cities.Get(name)
	if !ok {
		return ErrCityNotFound
	}

	for _, road := range c.Neighbours() {
		other := road.Other(c)
		other.neighbours.Remove(c.Name)
	}

	m.cities.Remove(name)
	m.citiesNum--

	return nil
}

func validateCityName(name string) error {
	if name == "" {
		return ErrEmptyCityName
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b == ';' || b < 32 {
			return ErrInvalidCityName
		}
	}

	return nil
}
