// Package view renders group-scoped JSON representations of domain
// records.
//
// Every renderable field declares its visibility with a `groups` struct
// tag. Rendering is parameterized by one group: only fields whose group
// set contains it are emitted, and nested records are rendered under the
// same group. The requesting side therefore controls how wide a nested
// child appears, which is what keeps back-references (booklet to account
// to booklets) from expanding forever. A hard depth limit backs that up.
package view

import (
	"reflect"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Group names one visibility view. The zero value renders nothing.
type Group string

const (
	GroupBooklet        Group = "getBooklet"
	GroupBookletPercent Group = "getBookletPercent"
	GroupCurrentAccount Group = "getCurrentAccount"
	GroupUser           Group = "getUser"
	GroupPicture        Group = "getPicture"
)

// ByName maps view names to their group, resolved once at startup instead
// of living as mutable handler state.
var ByName = map[string]Group{
	"booklet":        GroupBooklet,
	"bookletPercent": GroupBookletPercent,
	"currentAccount": GroupCurrentAccount,
	"user":           GroupUser,
	"picture":        GroupPicture,
}

// DefaultDepth bounds nested record expansion. Three levels covers the
// widest view in the model (booklet, its account, the account's users).
const DefaultDepth = 3

// Render marshals v under group g with the default depth limit.
func Render(v any, g Group) ([]byte, error) {
	return RenderDepth(v, g, DefaultDepth)
}

// RenderDepth marshals v under group g, expanding nested records at most
// depth levels deep.
func RenderDepth(v any, g Group, depth int) ([]byte, error) {
	return json.Marshal(project(reflect.ValueOf(v), g, depth))
}

var timeType = reflect.TypeOf(time.Time{})

// project builds the group-filtered representation of val as plain maps,
// slices and scalars ready for marshalling.
func project(val reflect.Value, g Group, depth int) any {
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil
		}
		return project(val.Elem(), g, depth)
	case reflect.Slice, reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return val.Interface()
		}
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = project(val.Index(i), g, depth)
		}
		return out
	case reflect.Struct:
		if val.Type() == timeType {
			return val.Interface()
		}
		return projectStruct(val, g, depth)
	default:
		return val.Interface()
	}
}

func projectStruct(val reflect.Value, g Group, depth int) map[string]any {
	out := make(map[string]any)
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if !inGroup(field.Tag.Get("groups"), g) {
			continue
		}
		fv := val.Field(i)
		if isRecord(field.Type) {
			if depth <= 1 {
				continue
			}
			out[fieldName(field)] = project(fv, g, depth-1)
			continue
		}
		out[fieldName(field)] = project(fv, g, depth)
	}
	return out
}

// isRecord reports whether t holds nested renderable records, directly or
// behind a pointer or slice.
func isRecord(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return isRecord(t.Elem())
	case reflect.Struct:
		return t != timeType
	default:
		return false
	}
}

func inGroup(tag string, g Group) bool {
	if tag == "" || tag == "-" {
		return false
	}
	for _, name := range strings.Split(tag, ",") {
		if Group(strings.TrimSpace(name)) == g {
			return true
		}
	}
	return false
}

func fieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
