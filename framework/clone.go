package framework

import "reflect"

// clone deep-copies a descriptor fixture. It is applied at the two points
// where descriptor data crosses into a sandbox: state injection and
// argument binding. This keeps mutable fixtures in the suite immune to
// mutation by the tested method, so repeated runs see identical inputs.
//
// Pointers, slices, maps, arrays, and the exported portion of structs are
// copied recursively; unexported struct fields are carried over as a
// shallow copy; funcs and channels are shared as-is.
func clone(v any) any {
	if v == nil {
		return nil
	}
	return cloneValue(reflect.ValueOf(v)).Interface()
}

func cloneSlice(values []any) []any {
	if values == nil {
		return nil
	}
	ret := make([]any, len(values))
	for i, v := range values {
		ret[i] = clone(v)
	}
	return ret
}

func cloneValue(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return rv
		}
		n := reflect.New(rv.Type().Elem())
		n.Elem().Set(cloneValue(rv.Elem()))
		return n
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		n := reflect.New(rv.Type()).Elem()
		n.Set(cloneValue(rv.Elem()))
		return n
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		n := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n.Index(i).Set(cloneValue(rv.Index(i)))
		}
		return n
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		n := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			n.SetMapIndex(cloneValue(iter.Key()), cloneValue(iter.Value()))
		}
		return n
	case reflect.Array:
		n := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			n.Index(i).Set(cloneValue(rv.Index(i)))
		}
		return n
	case reflect.Struct:
		n := reflect.New(rv.Type()).Elem()
		n.Set(rv) // shallow first, so unexported fields carry over
		for i := 0; i < rv.NumField(); i++ {
			if n.Field(i).CanSet() {
				n.Field(i).Set(cloneValue(rv.Field(i)))
			}
		}
		return n
	default:
		return rv
	}
}
