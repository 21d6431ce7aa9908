package main

import (
	// #include <stdlib.h>
	"C"
	"encoding/json"
	"unsafe"

	"github.com/steosofficial/steosmorphy/analyzer"
)

var morphAnalyzer *analyzer.MorphAnalyzer

//export CreateAnalyzer
func CreateAnalyzer() {
	morphAnalyzer, _ = analyzer.LoadMorphAnalyzer()
}

//export AnalyzeWord
func AnalyzeWord(word *C.char) *C.char {
	goWord := C.GoString(word)

	parses, forms := morphAnalyzer.Analyze(goWord)
	parsesJson, _ := json.Marshal(parses)
	formsJson, _ := json.Marshal(forms)

	result := string(parsesJson) + " " + string(formsJson)

	return C.CString(result)
}

//export FreeString
func FreeString(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

//export ReleaseAnalyzer
func ReleaseAnalyzer() {
	if morphAnalyzer != nil {
		morphAnalyzer.Close()
	}
	morphAnalyzer = nil
}

func main() {}
