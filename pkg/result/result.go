// Package result implementa un tipo suma Success | Failure para casos de uso que deben
// devolver todos los errores de negocio en vez de cortar en el primero.
package result

import (
	"errors"
	"fmt"
)

// ErrIllegalAccess indica un uso incorrecto del Result (leer el lado inactivo).
// No es un error de negocio: se lanza con panic.
var ErrIllegalAccess = errors.New("result: acceso ilegal")

type kind uint8

const (
	kindNone kind = iota
	kindSuccess
	kindFailure
)

// Result contiene un valor (Success) o los errores (Failure), nunca ambos.
// El valor cero no es ninguna de las dos variantes y cualquier acceso hace panic.
type Result[T, E any] struct {
	kind  kind
	value T
	errs  E
}

// Success construye la variante exitosa.
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{kind: kindSuccess, value: value}
}

// Failure construye la variante fallida.
func Failure[T, E any](errs E) Result[T, E] {
	return Result[T, E]{kind: kindFailure, errs: errs}
}

func (r Result[T, E]) IsSuccess() bool { return r.kind == kindSuccess }
func (r Result[T, E]) IsFailure() bool { return r.kind == kindFailure }

// Value devuelve el valor de un Success. Hace panic sobre un Failure.
func (r Result[T, E]) Value() T {
	if r.kind != kindSuccess {
		panic(fmt.Errorf("%w: Value() sobre %s", ErrIllegalAccess, r.kind))
	}
	return r.value
}

// Errors devuelve los errores de un Failure. Hace panic sobre un Success.
func (r Result[T, E]) Errors() E {
	if r.kind != kindFailure {
		panic(fmt.Errorf("%w: Errors() sobre %s", ErrIllegalAccess, r.kind))
	}
	return r.errs
}

// Match consume el Result de forma exhaustiva: exactamente una de las dos funciones se ejecuta.
func Match[T, E, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	switch r.kind {
	case kindSuccess:
		return onSuccess(r.value)
	case kindFailure:
		return onFailure(r.errs)
	default:
		panic(fmt.Errorf("%w: Match sobre %s", ErrIllegalAccess, r.kind))
	}
}

func (k kind) String() string {
	switch k {
	case kindSuccess:
		return "Success"
	case kindFailure:
		return "Failure"
	default:
		return "Result vacío"
	}
}
