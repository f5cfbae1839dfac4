package parser

import "strings"

// VariableInfo параметр метода или конструктора
type VariableInfo struct {
	Type string `json:"Type"`
	Name string `json:"Name"`
}

// PropertyInfo поле или автосвойство класса
type PropertyInfo struct {
	AccessModifier string `json:"AccessModifier"`
	Type           string `json:"Type"`
	Name           string `json:"Name"`
}

// ConstInfo константа класса со значением без кавычек
type ConstInfo struct {
	PropertyInfo
	Value string `json:"Value"`
}

// MethodInfo метод класса
type MethodInfo struct {
	AccessModifier string         `json:"AccessModifier"`
	ReturnType     string         `json:"ReturnType"`
	Name           string         `json:"Name"`
	Parameters     []VariableInfo `json:"Parameters"`
}

// CtorInfo конструктор класса, модификатор доступа не сохраняется
type CtorInfo struct {
	Parameters []VariableInfo `json:"Parameters"`
}

// ClassRecord структурный снимок одного класса.
// Все списки в порядке первого появления в тексте.
type ClassRecord struct {
	ClassName    string         `json:"ClassName"`
	Fields       []PropertyInfo `json:"Fields"`
	Properties   []PropertyInfo `json:"Properties"`
	Constants    []ConstInfo    `json:"Constants"`
	Methods      []MethodInfo   `json:"Methods"`
	Constructors []CtorInfo     `json:"ConstructorInfos"`
	Parents      []string       `json:"Parents"`
}

// HasParents сообщает, объявлено ли наследование. Список из одних пустых
// строк означает, что двоеточия в заголовке не было.
func (c ClassRecord) HasParents() bool {
	for _, p := range c.Parents {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
