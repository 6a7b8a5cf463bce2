package config

import "reflect"

// Forget drops the cached value of T so tests can reload it.
func Forget[T any]() {
	cache.Delete(reflect.TypeFor[T]())
}
