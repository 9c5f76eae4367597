// Package main реализует команду «staticlint» для проверки кода сокращателя ссылок.
// Инструмент собирает анализаторы golang.org/x/tools и honnef.co/go/tools
// и запускает их через multichecker.
//
// Использование:
//
//	go install ./cmd/staticlint
//	staticlint ./...
//
// Включённые анализаторы:
//   - printf, shadow, structtag, nilness, unusedresult, errorsas, lostcancel из golang.org/x/tools;
//   - exitmain: запрещает прямые вызовы os.Exit внутри main() пакета main;
//   - SA* правила staticcheck;
//   - S1* правила simple.
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	result := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		unusedresult.Analyzer,
		errorsas.Analyzer,
		lostcancel.Analyzer,
		ExitMainAnalyzer,
	}

	for _, la := range staticcheck.Analyzers {
		if strings.HasPrefix(la.Analyzer.Name, "SA") {
			result = append(result, la.Analyzer)
		}
	}
	for _, la := range simple.Analyzers {
		result = append(result, la.Analyzer)
	}
	return result
}
