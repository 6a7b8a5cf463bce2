package router

// Param is a single captured path parameter.
type Param struct {
	Key   string
	Value string
}

// Params holds captured path parameters in the order they are declared
// by the matched pattern. A wildcard tail is stored under WildcardKey.
type Params []Param

// Get returns the value bound to key and whether it was bound at all.
func (ps Params) Get(key string) (string, bool) {
	for i := range ps {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}
	return "", false
}

// ByName returns the value bound to key, or an empty string.
func (ps Params) ByName(key string) string {
	v, _ := ps.Get(key)
	return v
}

// Keys returns the bound parameter names in declaration order.
func (ps Params) Keys() []string {
	if len(ps) == 0 {
		return nil
	}
	keys := make([]string, len(ps))
	for i := range ps {
		keys[i] = ps[i].Key
	}
	return keys
}

// Map copies the parameters into a map.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}
	return m
}

// Len returns the number of bound parameters.
func (ps Params) Len() int {
	return len(ps)
}
