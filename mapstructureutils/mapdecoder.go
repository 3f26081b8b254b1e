package mapdecoder

import (
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// NormalizeMapDecode decodes a map[string]interface{} into the given result object, matching keys
// against json tags. Input is weakly typed: strings such as "true" or "a,b" decode into bools and
// slices, and json.Number values decode into the numeric kind of the target field.
func NormalizeMapDecode(input interface{}, result interface{}) error {
	config := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			jsonNumberToNumberHook(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           result,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// Merge overlays the given maps; keys of later maps win.
func Merge(layers ...map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{})
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// jsonNumberToNumberHook creates a DecodeHookFuncType that converts json.Number to the numeric kind of the target
func jsonNumberToNumberHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if numberStr, ok := data.(json.Number); ok {
			switch t.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return numberStr.Int64()
			case reflect.Float32, reflect.Float64:
				return numberStr.Float64()
			case reflect.String:
				return numberStr.String(), nil
			}
		}

		if f.Kind() == reflect.Map && t.Kind() != reflect.Struct {
			if m, ok := data.(map[string]interface{}); ok {
				return convertNumbersInMap(m), nil
			}
		}

		return data, nil
	}
}

// convertNumbersInMap converts json.Number values of untyped maps to int64 or float64
func convertNumbersInMap(original map[string]interface{}) map[string]interface{} {
	resultMap := make(map[string]interface{}, len(original))
	for key, val := range original {
		switch v := val.(type) {
		case json.Number:
			if intVal, err := v.Int64(); err == nil {
				resultMap[key] = intVal
			} else if floatVal, err := v.Float64(); err == nil {
				resultMap[key] = floatVal
			} else {
				resultMap[key] = val
			}
		case map[string]interface{}:
			resultMap[key] = convertNumbersInMap(v)
		default:
			resultMap[key] = val
		}
	}
	return resultMap
}
