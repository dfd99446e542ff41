package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/dknieriem/editordiff"
)

// diffWrapper exposes editordiff.Compute to JavaScript: two raw text
// values in, a rendered side-by-side HTML diff written into the page.
func diffWrapper() js.Func {
	diffFunc := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) != 2 {
			return errResult("Invalid no. of arguments passed - 2 required")
		}
		jsDoc := js.Global().Get("document")
		if !jsDoc.Truthy() {
			return errResult("Unable to get document object")
		}
		diffResultArea := jsDoc.Call("getElementById", "diffoutput")
		if !diffResultArea.Truthy() {
			return errResult("Unable to get output text area #diffoutput")
		}

		original := strings.Split(args[0].String(), "\n")
		modified := strings.Split(args[1].String(), "\n")

		result, err := editordiff.Compute(editordiff.DiffInput{Original: original, Modified: modified})
		if err != nil {
			return errResult(fmt.Sprintf("diff computation failed: %s", err))
		}

		originalHTML, modifiedHTML := RenderSideBySide(original, modified, result)
		diffResultArea.Set("value", originalHTML+"\n---\n"+modifiedHTML)
		return nil
	})
	return diffFunc
}

func errResult(message string) map[string]any {
	return map[string]any{"error": message}
}

func main() {
	fmt.Println("Go Web Assembly")
	js.Global().Set("diffStrings", diffWrapper())
	<-make(chan struct{})
}
