package fp

import (
	"fmt"
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, chan,
// func or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// PanicError carries a recovered panic value that had no better
// representation as a failure.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fp: recovered panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recovered converts a value returned by recover into a failure of type F.
// The value is used as is when it already is an F, otherwise it is wrapped
// in a *PanicError when F can hold one. ok is false when neither works.
func Recovered[F any](v any) (f F, ok bool) {
	if f, ok = v.(F); ok {
		return f, true
	}
	if f, ok = any(&PanicError{Value: v}).(F); ok {
		return f, true
	}
	return f, false
}

// Catch calls fn and converts a panic raised by it into a failure of type F.
// Panics that cannot be represented as F are re-raised.
func Catch[F any](fn func()) (failure F, panicked bool) {
	defer func() {
		if v := recover(); v != nil {
			f, ok := Recovered[F](v)
			if !ok {
				panic(v)
			}
			failure, panicked = f, true
		}
	}()

	fn()
	return failure, false
}
