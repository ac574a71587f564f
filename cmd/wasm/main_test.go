//go:build js && wasm
// +build js,wasm

package main

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireError(t *testing.T, got any) {
	t.Helper()
	m, ok := got.(map[string]any)
	require.True(t, ok, "expected an error object, got %#v", got)
	assert.NotEmpty(t, m["error"])
}

func TestBridgeRejectsNonNumbers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(js.Value, []js.Value) any
		args []any
	}{
		{"pxToSpacingToken string", pxToSpacingToken, []any{"16"}},
		{"pxToTypeToken null", pxToTypeToken, []any{nil}},
		{"shadowToCss string offset", shadowToCss, []any{"0", 4, 6, 0, "#000000"}},
		{"shadowToCss string opacity", shadowToCss, []any{0, 4, 6, 0, "#000000", "0.5"}},
		{"hexToRgba string alpha", hexToRgba, []any{"#ff0000", "0.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]js.Value, len(tt.args))
			for i, a := range tt.args {
				args[i] = js.ValueOf(a)
			}
			requireError(t, tt.fn(js.Undefined(), args))
		})
	}
}

func TestBridgeKeepsWorkingAfterBadInput(t *testing.T) {
	requireError(t, pxToSpacingToken(js.Undefined(), []js.Value{js.ValueOf("16")}))

	assert.Equal(t, "4", pxToSpacingToken(js.Undefined(), []js.Value{js.ValueOf(16)}))
	assert.Equal(t, "base", pxToTypeToken(js.Undefined(), []js.Value{js.ValueOf(16)}))
	assert.Equal(t, "rgba(255, 0, 0, 0.5)",
		hexToRgba(js.Undefined(), []js.Value{js.ValueOf("ff0000"), js.ValueOf(0.5)}))
	assert.Equal(t, "0px 4px 6px 0px rgba(0, 0, 0, 1)",
		shadowToCss(js.Undefined(), []js.Value{
			js.ValueOf(0), js.ValueOf(4), js.ValueOf(6), js.ValueOf(0), js.ValueOf("#000000"),
		}))
}
