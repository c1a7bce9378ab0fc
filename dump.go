package logging

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

// Maximum recursion depth to prevent stack overflow on deeply nested values.
const maxDumpDepth = 10

// Dump logs the contents of the provided value at Debug level, one record
// per leaf. Structs are walked by exported field, maps by key, slices and
// arrays by index (capped), anything else is printed directly. Useful for
// inspecting configuration or request payloads during development.
func (s *Service) Dump(v interface{}) {
	if s == nil || !s.isInitialized.Load() {
		return
	}
	logger := s.root.Load()
	if logger == nil {
		return
	}
	if v == nil {
		logger.Debug().Msg("Dump: <nil>")
		return
	}

	visited := make(map[uintptr]bool)
	dumpValue(logger, v, emptyString, visited, 0)
}

func dumpValue(logger *zerolog.Logger, v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		logger.Debug().Msgf("%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		logger.Debug().Msgf("%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, with cycle detection on pointers.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			logger.Debug().Msgf("%s: <nil>", prefix)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				logger.Debug().Msgf("%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			logger.Debug().Msgf("Struct: %s", typ.Name())
		} else {
			logger.Debug().Msgf("%s: %s {", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}
			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			dumpValue(logger, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			logger.Debug().Msgf("%s: }", prefix)
		}

	case reflect.Map:
		logger.Debug().Msgf("%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			mapPrefix := fmt.Sprintf("%s[%v]", prefix, iter.Key().Interface())
			dumpValue(logger, iter.Value().Interface(), mapPrefix, visited, depth+1)
		}

		logger.Debug().Msgf("%s: }", prefix)

	case reflect.Slice, reflect.Array:
		logger.Debug().Msgf("%s: %s (len: %d) {", prefix, typ.String(), val.Len())

		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			dumpValue(logger, val.Index(i).Interface(), elemPrefix, visited, depth+1)
		}
		if val.Len() > maxElements {
			logger.Debug().Msgf("%s: ... (%d more elements)", prefix, val.Len()-maxElements)
		}

		logger.Debug().Msgf("%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			logger.Debug().Msgf("%s: %v", prefix, val.Interface())
		} else {
			logger.Debug().Msgf("%s: %v", prefix, v)
		}
	}
}
