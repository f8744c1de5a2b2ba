package tensor

import "fmt"

// Module is a container of named parameters and nested submodules, mirroring
// the structure of a model being tracked.
type Module struct {
	paramOrder []string
	params     map[string]*Parameter
	childOrder []string
	children   map[string]*Module
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{
		params:   make(map[string]*Parameter),
		children: make(map[string]*Module),
	}
}

// AddParameter registers a parameter under name.
func (m *Module) AddParameter(name string, p *Parameter) error {
	if _, ok := m.params[name]; ok {
		return fmt.Errorf("parameter %s already registered", name)
	}
	if _, ok := m.children[name]; ok {
		return fmt.Errorf("name %s already used by a submodule", name)
	}
	m.params[name] = p
	m.paramOrder = append(m.paramOrder, name)
	return nil
}

// AddModule registers a submodule under name.
func (m *Module) AddModule(name string, child *Module) error {
	if _, ok := m.children[name]; ok {
		return fmt.Errorf("submodule %s already registered", name)
	}
	if _, ok := m.params[name]; ok {
		return fmt.Errorf("name %s already used by a parameter", name)
	}
	m.children[name] = child
	m.childOrder = append(m.childOrder, name)
	return nil
}

// NamedParameter pairs a parameter with its dotted path inside the tree.
type NamedParameter struct {
	Path  string
	Param *Parameter
}

// NamedParameters walks the tree depth-first in registration order and
// returns every parameter with its dotted path.
func (m *Module) NamedParameters() []NamedParameter {
	var out []NamedParameter
	m.walk("", &out)
	return out
}

func (m *Module) walk(prefix string, out *[]NamedParameter) {
	for _, name := range m.paramOrder {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		*out = append(*out, NamedParameter{Path: path, Param: m.params[name]})
	}
	for _, name := range m.childOrder {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		m.children[name].walk(path, out)
	}
}
