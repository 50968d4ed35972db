package option

import "github.com/ib-77/fpkit/pkg/fp"

// Option is either Present with a value or Absent. The zero value is Absent.
type Option[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func Absent[T any]() Option[T] {
	return Option[T]{}
}

// Of returns Absent for nil pointers, maps, slices, channels, funcs and
// interfaces, and Present otherwise. Zero values such as 0 or "" are Present.
func Of[T any](v T) Option[T] {
	if fp.IsNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Tap calls effect with the value when present and returns o unchanged.
func (o Option[T]) Tap(effect func(T)) Option[T] {
	if o.present {
		effect(o.value)
	}
	return o
}

// Map applies onPresent to the value when present. Panics raised by
// onPresent reach the caller.
func Map[T, U any](o Option[T], onPresent func(T) U) Option[U] {
	if o.present {
		return Present(onPresent(o.value))
	}
	return Absent[U]()
}

func FlatMap[T, U any](o Option[T], onPresent func(T) Option[U]) Option[U] {
	if o.present {
		return onPresent(o.value)
	}
	return Absent[U]()
}

func Fold[T, U any](o Option[T], onAbsent func() U, onPresent func(T) U) U {
	if o.present {
		return onPresent(o.value)
	}
	return onAbsent()
}
