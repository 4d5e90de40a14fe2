// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package logutil renders a Cable packet into structured slog attributes by
// reflecting over its exported fields, so every packet kind gets useful
// tracing without a hand-written log line per type.
package logutil

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/iancoleman/strcase"
)

// PacketAttrs reflects over packet's exported fields and returns them as
// slog attributes, snake-casing field names to match the rest of the log
// output. Zero-valued fields are omitted to keep traces readable.
func PacketAttrs(p any) []slog.Attr {
	return reflectAttrs(realValue(reflect.ValueOf(p)))
}

func reflectAttrs(val reflect.Value) []slog.Attr {
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	var attrs []slog.Attr
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		attrs = append(attrs, reflectAttr(
			strcase.ToSnake(f.Name),
			realValue(val.Field(i)),
		)...)
	}
	return attrs
}

func reflectAttr(name string, val reflect.Value) []slog.Attr {
	if missingValue(val) {
		return nil
	}

	// A property map nested inside a packet is rendered as one "props"
	// group holding a string attribute per key, rather than as a single
	// opaque map value.
	if name == "props" {
		return propsAttrs(val)
	}

	if v, ok := val.Interface().([]byte); ok {
		return []slog.Attr{slog.String(name, string(v))}
	}

	if val.Kind() == reflect.Struct {
		as := reflectAttrs(val)
		if len(as) == 0 {
			return nil
		}
		cpy := make([]any, len(as))
		for i, a := range as {
			cpy[i] = a
		}
		return []slog.Attr{slog.Group(name, cpy...)}
	}

	return []slog.Attr{slog.Any(name, val.Interface())}
}

func propsAttrs(val reflect.Value) []slog.Attr {
	if val.Kind() != reflect.Map || val.Len() == 0 {
		return nil
	}
	group := make([]any, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		group = append(group, slog.String(
			fmt.Sprint(iter.Key().Interface()),
			iter.Value().String(),
		))
	}
	return []slog.Attr{slog.Group("props", group...)}
}

func realValue(val reflect.Value) reflect.Value {
	for val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	return val
}

func missingValue(val reflect.Value) bool {
	return val.Kind() == reflect.Invalid || val.IsZero()
}
