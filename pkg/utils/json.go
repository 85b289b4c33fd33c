package utils

import (
	"reflect"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa in com indentação; falhas viram string vazia
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		in = decoded
	}

	out, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(out)
}

// FlattenJSON achata mapas e listas aninhados num único nível.
// As chaves são os segmentos do caminho unidos por "_" (índices para listas).
// Em colisões de chave, vence a última escrita.
func FlattenJSON(in any) map[string]any {
	out := make(map[string]any)
	flatten(in, "", out)
	return out
}

func flatten(x any, name string, out map[string]any) {
	switch v := x.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(v[k], name+k+"_", out)
		}
	case []any:
		for i, item := range v {
			flatten(item, name+strconv.Itoa(i)+"_", out)
		}
	case []byte, jsoniter.RawMessage:
		setLeaf(x, name, out)
	default:
		flattenReflect(x, name, out)
	}
}

// flattenReflect cobre mapas com chave string e listas de tipos concretos
// (map[string]string, []string, snapdomain.Row...)
func flattenReflect(x any, name string, out map[string]any) {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			setLeaf(x, name, out)
			return
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			flatten(v.MapIndex(k).Interface(), name+k.String()+"_", out)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			flatten(v.Index(i).Interface(), name+strconv.Itoa(i)+"_", out)
		}
	default:
		setLeaf(x, name, out)
	}
}

func setLeaf(x any, name string, out map[string]any) {
	key := name
	if len(key) > 0 {
		key = key[:len(key)-1]
	}
	out[key] = x
}
