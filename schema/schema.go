// Package schema generates JSON Schema (draft-07) documents for nibble byte
// types and for structs that carry them.
//
//	type Key struct {
//	    ID   nibble.Array[[16]byte] `json:"id"`
//	    Blob nibble.Base64          `json:"blob,omitempty"`
//	}
//
//	s := schema.Of[Key]()
//	// {"$schema": "...", "title": "Key", "type": "object",
//	//  "required": ["id"], "properties": {"id": {...}, "blob": {...}}}
//
// Documents are github.com/invopop/jsonschema values. Types implementing
// nibble.Describer supply their own schema and every other leaf type is
// rendered by a jsonschema.Reflector. Struct fields are read with sentinel;
// the property name comes from the json tag and a field is required unless
// it is a pointer or tagged omitempty.
package schema

import (
	"encoding"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/zoobzio/nibble"
	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("json")
}

// Draft07 is the $schema URI of generated documents.
const Draft07 = "http://json-schema.org/draft-07/schema#"

var (
	describerType     = reflect.TypeFor[nibble.Describer]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// reflector renders leaf types inline, without $id or $defs.
var reflector = &jsonschema.Reflector{
	Anonymous:                 true,
	DoNotReference:            true,
	AllowAdditionalProperties: true,
}

// Of returns the root schema for T.
func Of[T any]() *jsonschema.Schema {
	rt := reflect.TypeFor[T]()

	var s *jsonschema.Schema
	if isObject(rt) {
		s = object(sentinel.Scan[T]())
	} else {
		s = leaf(rt)
	}

	s.Version = Draft07
	return s
}

// forType returns the inline schema for a field of type rt.
func forType(rt reflect.Type) *jsonschema.Schema {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	var s *jsonschema.Schema
	if isObject(rt) {
		s = object(scanNestedType(rt))
	} else {
		s = leaf(rt)
		s.Version = ""
	}
	s.Title = ""
	return s
}

// isObject reports whether rt is written as a JSON object of its fields.
// Structs that describe themselves or marshal to text are leaves.
func isObject(rt reflect.Type) bool {
	return rt.Kind() == reflect.Struct &&
		!rt.Implements(describerType) &&
		!rt.Implements(textMarshalerType)
}

// leaf reflects a non-object type.
func leaf(rt reflect.Type) *jsonschema.Schema {
	switch rt.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		// not representable in JSON
		return &jsonschema.Schema{}
	}
	return reflector.ReflectFromType(rt)
}

// object builds an object schema from scanned struct metadata.
func object(spec sentinel.Metadata) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Title:      spec.TypeName,
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}

	for _, field := range spec.Fields {
		name, omitempty, skip := jsonName(field.Name, field.Tags["json"])
		if skip {
			continue
		}
		s.Properties.Set(name, forType(field.ReflectType))
		if !omitempty && field.ReflectType.Kind() != reflect.Pointer {
			s.Required = append(s.Required, name)
		}
	}

	return s
}

// jsonName applies encoding/json naming rules to a field.
func jsonName(field, tag string) (name string, omitempty, skip bool) {
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field
	}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" || opt == "omitzero" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tags := map[string]string{}
		if v, ok := sf.Tag.Lookup("json"); ok {
			tags["json"] = v
		}

		spec.Fields = append(spec.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}

	return spec
}
