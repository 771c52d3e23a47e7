package domain

import "encoding/json"

// ValueKind discriminates the payload value variants the model may produce.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindObject
)

// Value is one loosely-typed payload value from model output. Modeling the
// payload as a tagged union instead of map[string]any lets the resolver and
// executor match on kinds instead of type-asserting at every access.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	obj  Bag
}

// Bag is a payload object: string keys to tagged values.
type Bag map[string]Value

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps n.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ObjectValue wraps a nested bag.
func ObjectValue(o Bag) Value { return Value{kind: KindObject, obj: o} }

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string variant.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric variant.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean variant.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsObject returns the nested-object variant.
func (v Value) AsObject() (Bag, bool) {
	return v.obj, v.kind == KindObject
}

// DecodeBag converts raw JSON object bytes into a Bag. Arrays and other
// shapes the action grammar does not use are dropped rather than rejected:
// the model's payload is untrusted and a stray field must not abort parsing.
func DecodeBag(raw json.RawMessage) (Bag, error) {
	if len(raw) == 0 {
		return Bag{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return bagFromMap(m), nil
}

func bagFromMap(m map[string]any) Bag {
	bag := make(Bag, len(m))
	for k, raw := range m {
		switch val := raw.(type) {
		case string:
			bag[k] = StringValue(val)
		case float64:
			bag[k] = NumberValue(val)
		case bool:
			bag[k] = BoolValue(val)
		case map[string]any:
			bag[k] = ObjectValue(bagFromMap(val))
		case nil:
			bag[k] = Value{}
		}
	}
	return bag
}

// GetString returns the string at key if present and of string kind.
func (b Bag) GetString(key string) (string, bool) {
	v, ok := b[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// GetNumber returns the number at key if present and of numeric kind.
func (b Bag) GetNumber(key string) (float64, bool) {
	v, ok := b[key]
	if !ok {
		return 0, false
	}
	return v.AsNumber()
}

// GetBool returns the boolean at key if present and of boolean kind.
func (b Bag) GetBool(key string) (bool, bool) {
	v, ok := b[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// Has reports whether key is present, regardless of kind.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// ToMap renders the bag back to plain Go values, for policy input and logs.
func (b Bag) ToMap() map[string]any {
	m := make(map[string]any, len(b))
	for k, v := range b {
		switch v.kind {
		case KindString:
			m[k] = v.str
		case KindNumber:
			m[k] = v.num
		case KindBool:
			m[k] = v.b
		case KindObject:
			m[k] = v.obj.ToMap()
		case KindNull:
			m[k] = nil
		}
	}
	return m
}
