package gen

import (
	"fmt"
	"strings"
)

// buf accumulates one generated file. Lines are written pre-formatted
// (tab indentation, gofmt spacing) so the goimports pass is a
// verification step, not a repair step.
type buf struct {
	b strings.Builder
}

func (w *buf) p(format string, args ...any) {
	fmt.Fprintf(&w.b, format+"\n", args...)
}

func (w *buf) nl() {
	w.b.WriteByte('\n')
}

func (w *buf) String() string {
	return w.b.String()
}

// candidateImports is the closed set of packages generated code may
// use, in sorted order.
var candidateImports = []string{"errors", "fmt", "math", "strconv", "strings"}

// assembleFile glues the generated-code header, package clause, import
// block, and body into one source file. Imports are detected by
// scanning the body for qualified references, which keeps the emitters
// free of bookkeeping and cannot disagree with the emitted text.
func assembleFile(pkg, fingerprint, body string) string {
	var w buf
	w.p("// Code generated by floatgen. DO NOT EDIT.")
	w.p("//")
	w.p("// Config fingerprint: %s", fingerprint)
	w.nl()
	w.p("package %s", pkg)

	var used []string
	for _, imp := range candidateImports {
		if strings.Contains(body, imp+".") {
			used = append(used, imp)
		}
	}
	if len(used) == 1 {
		w.nl()
		w.p("import %q", used[0])
	} else if len(used) > 1 {
		w.nl()
		w.p("import (")
		for _, imp := range used {
			w.p("\t%q", imp)
		}
		w.p(")")
	}

	w.nl()
	w.b.WriteString(body)
	return w.String()
}

// assembleDocFile is assembleFile for the package-doc file, where the
// doc comment must sit directly above the package clause.
func assembleDocFile(pkg, fingerprint, docComment string) string {
	var w buf
	w.p("// Code generated by floatgen. DO NOT EDIT.")
	w.p("//")
	w.p("// Config fingerprint: %s", fingerprint)
	w.nl()
	w.b.WriteString(docComment)
	w.p("package %s", pkg)
	return w.String()
}

// snake converts an exported type name to its file-name form:
// "NegativeNormalized" becomes "negative_normalized".
func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
