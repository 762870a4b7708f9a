package jsondom

import (
	"iter"
	"maps"
	"slices"
)

// Object is an insertion-ordered mapping from unique string keys to values.
// Keys iterate in the order they were first added, and that order is what the
// serializer emits, so round-tripping a document preserves its member order.
//
// The zero Object is empty and ready to use. An Object carries no internal
// locking: concurrent readers are safe on an instance that is not being
// mutated, while mutation must be serialized by the caller.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns a new empty object.
func NewObject() *Object {
	return &Object{}
}

// Kind reports KindObject.
func (*Object) Kind() Kind { return KindObject }

func (*Object) jsonValue() {}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Contains reports whether key is present.
func (o *Object) Contains(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Add inserts a new entry at the end of the iteration order. Adding a key
// that is already present fails with a *DuplicateKeyError; Add never
// overwrites. A nil value is stored as Null{}.
func (o *Object) Add(key string, v Value) error {
	if _, ok := o.values[key]; ok {
		return &DuplicateKeyError{Key: key}
	}
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	o.keys = append(o.keys, key)
	o.values[key] = normalize(v)
	return nil
}

// Set upserts an entry. A new key is appended to the iteration order; an
// existing key keeps its original position and only its value is replaced.
// A nil value is stored as Null{}.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; ok {
		o.values[key] = normalize(v)
		return
	}
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	o.keys = append(o.keys, key)
	o.values[key] = normalize(v)
}

// Get returns the value stored under key, or a *KeyNotFoundError when the
// key is absent.
func (o *Object) Get(key string) (Value, error) {
	v, ok := o.values[key]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// Remove deletes the entry for key and reports whether it was present.
func (o *Object) Remove(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

// Keys returns the keys in insertion order. The slice is a copy; mutating it
// does not affect the object.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// All returns an iterator over the entries in insertion order. The object
// must not be mutated while iterating.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// ShallowClone returns a new object with the same entries in the same order.
// The copy is shallow: nested *Object and Array values are shared by
// reference with the receiver, so mutating a nested structure through the
// clone is visible from the original. Top-level Add/Set/Remove on the clone
// do not affect the original.
func (o *Object) ShallowClone() *Object {
	return &Object{
		keys:   slices.Clone(o.keys),
		values: maps.Clone(o.values),
	}
}

// normalize maps a nil interface to the Null variant so the model never
// stores a value outside the closed set.
func normalize(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}
