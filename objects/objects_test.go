/*
File    : go-pinky/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNumber_ToString verifies decimal formatting with trailing zeros
// trimmed, matching the language's print contract.
func TestNumber_ToString(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{50, "50"},
		{0, "0"},
		{-7, "-7"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1e6, "1000000"},
		{-0.25, "-0.25"},
	}

	for _, tt := range tests {
		num := &Number{Value: tt.value}
		assert.Equal(t, tt.expected, num.ToString())
		assert.Equal(t, NumberType, num.GetType())
	}
}

// TestBoolean_ToString verifies boolean display forms.
func TestBoolean_ToString(t *testing.T) {
	assert.Equal(t, "true", (&Boolean{Value: true}).ToString())
	assert.Equal(t, "false", (&Boolean{Value: false}).ToString())
}

// TestNull_ToString verifies that null displays as the empty string.
func TestNull_ToString(t *testing.T) {
	null := &Null{}
	assert.Equal(t, "", null.ToString())
	assert.Equal(t, NullType, null.GetType())
	assert.Equal(t, "<null>", null.ToObject())
}

// TestString_ToString verifies that escape sequences are interpreted at
// display time while the stored value stays raw.
func TestString_ToString(t *testing.T) {
	str := &String{Value: `a\tb\n`}
	assert.Equal(t, "a\tb\n", str.ToString())
	assert.Equal(t, `a\tb\n`, str.Value)
}

// TestReturnValue verifies that the unwinding wrapper displays as its
// inner value.
func TestReturnValue(t *testing.T) {
	ret := &ReturnValue{Value: &Number{Value: 3}}
	assert.Equal(t, ReturnType, ret.GetType())
	assert.Equal(t, "3", ret.ToString())
	assert.Equal(t, "<return<number(3)>>", ret.ToObject())
}

// TestUnescape verifies the escape interpretation rules: known sequences
// translate, unknown ones yield the following character literally.
func TestUnescape(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{`plain`, "plain"},
		{`a\nb`, "a\nb"},
		{`a\rb`, "a\rb"},
		{`a\tb`, "a\tb"},
		{`a\\b`, `a\b`},
		{`a\"b`, `a"b`},
		{`a\qb`, "aqb"},
		{`trailing\`, `trailing\`},
		{`\n\t`, "\n\t"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Unescape(tt.raw), "raw %q", tt.raw)
	}
}
