//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/figmatokens/internal/style"
)

// errorResult is what every bridge function returns on failure.
func errorResult(err error) any {
	return map[string]any{"error": err.Error()}
}

// hexToHsl(hex) returns "H S% L%".
func hexToHsl(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult(fmt.Errorf("missing arguments"))
	}
	v, err := style.FormatHSL(args[0].String())
	if err != nil {
		return errorResult(err)
	}
	return v
}

// hexToRgba(hex, alpha = 1) returns "rgba(r, g, b, a)".
func hexToRgba(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult(fmt.Errorf("missing arguments"))
	}
	alpha, err := optFloat(args, 1, 1)
	if err != nil {
		return errorResult(err)
	}
	v, err := style.HexToRGBA(args[0].String(), alpha)
	if err != nil {
		return errorResult(err)
	}
	return v
}

// shadowToCss(x, y, blur, spread, color, opacity = 1) returns a box-shadow value.
func shadowToCss(this js.Value, args []js.Value) any {
	if len(args) < 5 {
		return errorResult(fmt.Errorf("missing arguments"))
	}
	var dims [4]int
	for i := range dims {
		n, err := intArg(args, i)
		if err != nil {
			return errorResult(err)
		}
		dims[i] = n
	}
	opacity, err := optFloat(args, 5, 1)
	if err != nil {
		return errorResult(err)
	}

	v, err := style.ShadowToCSS(style.Shadow{
		X:       dims[0],
		Y:       dims[1],
		Blur:    dims[2],
		Spread:  dims[3],
		Color:   args[4].String(),
		Opacity: opacity,
	})
	if err != nil {
		return errorResult(err)
	}
	return v
}

func pxToSpacingToken(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult(fmt.Errorf("missing arguments"))
	}
	px, err := intArg(args, 0)
	if err != nil {
		return errorResult(err)
	}
	return style.PxToSpacingToken(px)
}

func pxToTypeToken(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult(fmt.Errorf("missing arguments"))
	}
	px, err := intArg(args, 0)
	if err != nil {
		return errorResult(err)
	}
	return style.PxToTypeToken(px)
}

// autoLayoutToClasses(layout) accepts the frame as an object or a JSON string
// and returns {container, items}.
func autoLayoutToClasses(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult(fmt.Errorf("missing arguments"))
	}

	raw := args[0]
	if raw.Type() != js.TypeString {
		raw = js.Global().Get("JSON").Call("stringify", raw)
	}

	var l style.AutoLayout
	if err := json.Unmarshal([]byte(raw.String()), &l); err != nil {
		return errorResult(fmt.Errorf("failed to parse layout: %v", err))
	}

	classes, err := style.AutoLayoutToClasses(l)
	if err != nil {
		return errorResult(err)
	}
	return map[string]any{"container": classes.Container, "items": classes.Items}
}

// intArg reads args[i] as an integer. Non-numbers are reported instead of
// letting js.Value.Int panic.
func intArg(args []js.Value, i int) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	if args[i].Type() != js.TypeNumber {
		return 0, fmt.Errorf("argument %d must be a number, got %s", i, args[i].Type())
	}
	return args[i].Int(), nil
}

// optFloat reads an optional numeric argument, using def when it is absent.
func optFloat(args []js.Value, i int, def float64) (float64, error) {
	if len(args) <= i || args[i].IsUndefined() || args[i].IsNull() {
		return def, nil
	}
	if args[i].Type() != js.TypeNumber {
		return 0, fmt.Errorf("argument %d must be a number, got %s", i, args[i].Type())
	}
	return args[i].Float(), nil
}

func main() {
	c := make(chan struct{})

	js.Global().Set("hexToHsl", js.FuncOf(hexToHsl))
	js.Global().Set("hexToRgba", js.FuncOf(hexToRgba))
	js.Global().Set("shadowToCss", js.FuncOf(shadowToCss))
	js.Global().Set("pxToSpacingToken", js.FuncOf(pxToSpacingToken))
	js.Global().Set("pxToTypeToken", js.FuncOf(pxToTypeToken))
	js.Global().Set("autoLayoutToClasses", js.FuncOf(autoLayoutToClasses))

	fmt.Println("figmatokens WASM module loaded")
	<-c
}
