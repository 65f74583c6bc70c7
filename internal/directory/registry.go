package directory

import "slices"

// Registry maps recognised field names to their descriptors and, for compound
// fields, to the ordered subfield list. A Registry is read-only once a
// conversion run starts.
type Registry struct {
	descriptors map[string]Descriptor
	order       []string
	subfields   map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
		subfields:   make(map[string][]string),
	}
}

// Default returns a registry holding the built-in citation directory.
func Default() *Registry {
	r := NewRegistry()

	for _, d := range citationFields {
		r.Add(d, compoundSubfields[d.Name])
	}

	return r
}

// Add registers or replaces a descriptor. For compound fields subfields is
// the default positional schema; it is ignored for other type classes.
func (r *Registry) Add(d Descriptor, subfields []string) {
	if _, exists := r.descriptors[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}

	r.descriptors[d.Name] = d

	if d.IsCompound() {
		r.subfields[d.Name] = slices.Clone(subfields)
	} else {
		delete(r.subfields, d.Name)
	}
}

// Lookup returns the descriptor for name, or false if the field is unknown.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.descriptors[name]
	return d, ok
}

// Has returns true if name is a recognised field.
func (r *Registry) Has(name string) bool {
	_, ok := r.descriptors[name]
	return ok
}

// Subfields returns a copy of the default subfield list for a compound field.
func (r *Registry) Subfields(name string) []string {
	return slices.Clone(r.subfields[name])
}

// Names returns all field names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of recognised fields.
func (r *Registry) Len() int {
	return len(r.order)
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()

	for _, name := range r.order {
		c.Add(r.descriptors[name], r.subfields[name])
	}

	return c
}
