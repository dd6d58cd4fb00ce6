package object

import "fmt"

// clamp restricts an int/double default or incoming value to its declared
// [min,max], per §4.2's "the core then clamps ints/doubles to their
// declared [min,max]" metadata-loading rule.
func clamp(p PropertyDesc, v interface{}) interface{} {
	switch p.Type {
	case PropInt:
		iv, ok := v.(int32)
		if !ok {
			return v
		}
		if p.HasMin && float64(iv) < p.Min {
			iv = int32(p.Min)
		}
		if p.HasMax && float64(iv) > p.Max {
			iv = int32(p.Max)
		}
		return iv
	case PropDouble:
		dv, ok := v.(float64)
		if !ok {
			return v
		}
		if p.HasMin && dv < p.Min {
			dv = p.Min
		}
		if p.HasMax && dv > p.Max {
			dv = p.Max
		}
		return dv
	default:
		return v
	}
}

// getProp is the common read path for every typed accessor below.
func (n *Node) getProp(iface, name string, want PropertyType) (interface{}, error) {
	desc, ok := n.lookupProp(iface, name, want)
	if !ok {
		return nil, fmt.Errorf("object: no %v property %s.%s", want, iface, name)
	}
	_ = desc

	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.props[iface][name], nil
}

func (n *Node) lookupProp(iface, name string, want PropertyType) (PropertyDesc, bool) {
	i, ok := n.Type.Interface(iface)
	if !ok {
		return PropertyDesc{}, false
	}
	p, ok := i.property(name)
	if !ok || p.Type != want {
		return PropertyDesc{}, false
	}
	return *p, true
}

// setProp is the common write path: run the optional Setter, clamp, commit,
// and emit the changed signal + Changed callback iff the value actually
// changed (§4.2: "Setting emits the changed signal when the stored value
// actually changes").
func (n *Node) setProp(iface, name string, want PropertyType, v interface{}, signalName string) error {
	desc, ok := n.lookupProp(iface, name, want)
	if !ok {
		return fmt.Errorf("object: no %v property %s.%s", want, iface, name)
	}

	if desc.Setter != nil {
		transformed, err := desc.Setter(n, v)
		if err != nil {
			return err
		}
		v = transformed
	}
	v = clamp(desc, v)

	n.mu.Lock()
	old := n.props[iface][name]
	changed := old != v
	if changed {
		n.props[iface][name] = v
	}
	n.mu.Unlock()

	if changed {
		if desc.Changed != nil {
			desc.Changed(n, old, v)
		}
		n.Signal(name, iface, signalName, string(rune('a'+int(want))), []interface{}{old, v})
	}
	return nil
}

// GetBool/SetBool and the int32/double/string analogues are the typed
// property primitives of §4.2. There is no separate BoolChanged-style
// function: a Set that changes the stored value emits "<name>Changed".

func (n *Node) GetBool(iface, name string) (bool, error) {
	v, err := n.getProp(iface, name, PropBool)
	if err != nil {
		return false, err
	}
	b, _ := v.(bool)
	return b, nil
}

func (n *Node) SetBool(iface, name string, v bool) error {
	return n.setProp(iface, name, PropBool, v, name+"Changed")
}

func (n *Node) GetInt(iface, name string) (int32, error) {
	v, err := n.getProp(iface, name, PropInt)
	if err != nil {
		return 0, err
	}
	i, _ := v.(int32)
	return i, nil
}

func (n *Node) SetInt(iface, name string, v int32) error {
	return n.setProp(iface, name, PropInt, v, name+"Changed")
}

func (n *Node) GetDouble(iface, name string) (float64, error) {
	v, err := n.getProp(iface, name, PropDouble)
	if err != nil {
		return 0, err
	}
	d, _ := v.(float64)
	return d, nil
}

func (n *Node) SetDouble(iface, name string, v float64) error {
	return n.setProp(iface, name, PropDouble, v, name+"Changed")
}

func (n *Node) GetString(iface, name string) (string, error) {
	v, err := n.getProp(iface, name, PropString)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

func (n *Node) SetString(iface, name string, v string) error {
	return n.setProp(iface, name, PropString, v, name+"Changed")
}
