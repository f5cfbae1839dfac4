package database

import (
	"errors"
	"fmt"
)

// ErrUnknownNativeType возвращается, когда нативного типа нет в таблице соответствий
var ErrUnknownNativeType = errors.New("unknown native type")

// UnknownTypeError содержит нативный тип, для которого не нашлось соответствия
type UnknownTypeError struct {
	NativeType string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownNativeType, e.NativeType)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownNativeType
}

// nativeTypes таблица соответствий нативных типов типам генерируемого класса.
// Только для чтения.
var nativeTypes = map[string]string{
	"NUMBER": "int",
	"TEXT":   "string",
	"DATE":   "DateTime",
	"BIT":    "bool",
}

// MapNativeType возвращает тип свойства для нативного типа колонки.
// Поиск точный, с учётом регистра.
func MapNativeType(native string) (string, error) {
	mapped, ok := nativeTypes[native]
	if !ok {
		return "", &UnknownTypeError{NativeType: native}
	}
	return mapped, nil
}
