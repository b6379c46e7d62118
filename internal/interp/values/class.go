package values

// Class is the runtime representation of a class declaration: its name, an
// optional superclass reference, and a method table keyed by name.
type Class struct {
	Name       string
	SuperClass *Class // nil for a root class
	Methods    map[string]*Function
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// FindMethod searches this class's own methods, then recursively the
// superclass chain. Returns nil if no class in the chain defines name.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.SuperClass != nil {
		return c.SuperClass.FindMethod(name)
	}
	return nil
}

// Instance is the runtime representation of a class instance: a reference
// to its class plus a mutable field map, dynamically populated on first
// Set.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

// Get looks up name first in the field map, then — on miss — via method
// lookup, returning the method bound to this instance. ok is false if
// neither a field nor a method named name exists.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

// Set inserts value into the field map, creating the field on first write.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
