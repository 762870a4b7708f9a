package jsondom

import (
	"fmt"
	"slices"
)

// GetString returns the string stored under key. Like every typed accessor
// it checks the stored tag exactly and never coerces: a missing key fails
// with *KeyNotFoundError and any other kind with *TypeMismatchError.
func (o *Object) GetString(key string) (string, error) {
	v, err := o.Get(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(String)
	if !ok {
		return "", &TypeMismatchError{Key: key, Want: KindString, Got: v.Kind()}
	}
	return string(s), nil
}

// GetBool returns the bool stored under key.
func (o *Object) GetBool(key string) (bool, error) {
	v, err := o.Get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, &TypeMismatchError{Key: key, Want: KindBool, Got: v.Kind()}
	}
	return bool(b), nil
}

// GetInt32 returns the 32-bit integer stored under key. An Int64 does not
// satisfy it even when the value would fit.
func (o *Object) GetInt32(key string) (int32, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Int32)
	if !ok {
		return 0, &TypeMismatchError{Key: key, Want: KindInt32, Got: v.Kind()}
	}
	return int32(n), nil
}

// GetInt64 returns the 64-bit integer stored under key. An Int32 does not
// satisfy it; the parser only produces Int64 for values outside 32 bits.
func (o *Object) GetInt64(key string) (int64, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Int64)
	if !ok {
		return 0, &TypeMismatchError{Key: key, Want: KindInt64, Got: v.Kind()}
	}
	return int64(n), nil
}

// GetFloat64 returns the float stored under key.
func (o *Object) GetFloat64(key string) (float64, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(Float64)
	if !ok {
		return 0, &TypeMismatchError{Key: key, Want: KindFloat64, Got: v.Kind()}
	}
	return float64(f), nil
}

// GetObject returns the nested object stored under key.
func (o *Object) GetObject(key string) (*Object, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*Object)
	if !ok {
		return nil, &TypeMismatchError{Key: key, Want: KindObject, Got: v.Kind()}
	}
	return n, nil
}

// GetArray returns the array stored under key.
func (o *Object) GetArray(key string) (Array, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	a, ok := v.(Array)
	if !ok {
		return nil, &TypeMismatchError{Key: key, Want: KindArray, Got: v.Kind()}
	}
	return a, nil
}

// IsNull reports whether the value stored under key is null. Unlike the
// typed accessors it does not fail on other kinds, only on a missing key.
func (o *Object) IsNull(key string) (bool, error) {
	v, err := o.Get(key)
	if err != nil {
		return false, err
	}
	return v.Kind() == KindNull, nil
}

// GetEnum returns the string stored under key converted to T, checking it
// against the allowed values. With no allowed values given, any string
// converts. The value must be stored as a string; other kinds fail with
// *TypeMismatchError like GetString.
func GetEnum[T ~string](o *Object, key string, allowed ...T) (T, error) {
	var zero T
	s, err := o.GetString(key)
	if err != nil {
		return zero, err
	}
	v := T(s)
	if len(allowed) > 0 && !slices.Contains(allowed, v) {
		return zero, fmt.Errorf("jsondom: key %q holds %q, not a valid %T", key, s, zero)
	}
	return v, nil
}
