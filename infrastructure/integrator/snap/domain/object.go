package snapdomain

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var null = []byte("null")

// FieldState diferencia campo ausente de campo presente com valor null
type FieldState int

const (
	FieldAbsent FieldState = iota
	FieldNull
	FieldPresent
)

func (s FieldState) String() string {
	switch s {
	case FieldAbsent:
		return "absent"
	case FieldNull:
		return "null"
	case FieldPresent:
		return "present"
	}
	return fmt.Sprintf("FieldState(%d)", int(s))
}

type Field struct {
	State FieldState
	Raw   jsoniter.RawMessage
}

// Value decodifica o campo; ausente e null retornam nil
func (f Field) Value() (any, error) {
	if f.State != FieldPresent {
		return nil, nil
	}

	var v any
	if err := decodeNumber(f.Raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// String retorna o valor textual e se o campo é uma string presente
func (f Field) String() (string, bool) {
	if f.State != FieldPresent {
		return "", false
	}

	var s string
	if err := json.Unmarshal(f.Raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Object é um objeto JSON opaco retornado pela API
type Object map[string]jsoniter.RawMessage

func (o Object) Field(key string) Field {
	raw, ok := o[key]
	if !ok {
		return Field{State: FieldAbsent}
	}
	// jsoniter decodifica null dentro de um mapa como RawMessage vazio
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, null) {
		return Field{State: FieldNull}
	}
	return Field{State: FieldPresent, Raw: raw}
}

// Value equivale a um get: ausente ou null viram nil
func (o Object) Value(key string) (any, error) {
	return o.Field(key).Value()
}

// Object decodifica um objeto aninhado; ausente ou null retornam nil sem erro
func (o Object) Object(key string) (Object, error) {
	f := o.Field(key)
	if f.State != FieldPresent {
		return nil, nil
	}

	var nested Object
	if err := json.Unmarshal(f.Raw, &nested); err != nil {
		return nil, fmt.Errorf("snapdomain: field %q is not an object: %w", key, err)
	}
	return nested, nil
}

// ID retorna o campo "id" como string
func (o Object) ID() string {
	id, _ := o.Field("id").String()
	return id
}

func decodeNumber(raw []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	return decoder.Decode(v)
}

// Row é um registro plano pronto para carga tabular
type Row map[string]any
