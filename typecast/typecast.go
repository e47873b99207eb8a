package typecast

import "reflect"

// CanCastTo reports whether a value of type from can become a value of
// type to through assignment or a conversion expression such as T(v).
// Integer to string conversions are excluded because they produce a rune
// rather than a numeric cast. A nil type is never castable.
func CanCastTo(from, to reflect.Type) bool {
	if from == nil || to == nil {
		return false
	}
	if from.AssignableTo(to) {
		return true
	}
	if isInteger(from.Kind()) && to.Kind() == reflect.String {
		return false
	}
	return from.ConvertibleTo(to)
}

// CanCastFrom is CanCastTo with the arguments reversed.
func CanCastFrom(to, from reflect.Type) bool {
	return CanCastTo(from, to)
}

// CanImplicitlyCast reports whether from is assignable to to, or is a
// numeric type that widens into to without losing its sign: a smaller
// integer into a larger one of the same or signed kind, any integer into
// a float, or a smaller float or complex into a larger one.
func CanImplicitlyCast(from, to reflect.Type) bool {
	if from == nil || to == nil {
		return false
	}
	if from.AssignableTo(to) {
		return true
	}
	fk, tk := from.Kind(), to.Kind()
	switch {
	case isSigned(fk):
		switch {
		case isSigned(tk):
			return to.Size() > from.Size()
		case isFloat(tk):
			return true
		}
	case isUnsigned(fk):
		switch {
		case isSigned(tk), isUnsigned(tk):
			return to.Size() > from.Size()
		case isFloat(tk):
			return true
		}
	case isFloat(fk):
		return isFloat(tk) && to.Size() > from.Size()
	case isComplex(fk):
		return isComplex(tk) && to.Size() > from.Size()
	}
	return false
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isInteger(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k)
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}
