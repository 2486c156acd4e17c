// Package render turns method results into human-readable output: indented
// JSON for logs and a collapsible, syntax-highlighted HTML tree for the
// results panel.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"log"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/xavierca1/greenapi-console/internal/entity"
)

const DefaultStyle = "github"

type Renderer struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func NewRenderer(styleName string) *Renderer {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Renderer{
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(2)),
	}
}

// JSON never fails: values encoding/json rejects are printed with %+v.
func JSON(v interface{}) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(out)
}

// Payload is what the panel displays: the data on success, method and
// error otherwise.
func Payload(result entity.MethodResult) interface{} {
	if result.OK {
		return result.Data
	}
	return struct {
		Method string           `json:"method"`
		Error  *entity.APIError `json:"error"`
	}{result.Method, result.Error}
}

// HTML renders a complete replacement for the results container.
func (r *Renderer) HTML(result entity.MethodResult) string {
	status := "ok"
	if !result.OK {
		status = "error"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<details class="result result-%s" open><summary>%s &middot; %s</summary>`,
		status, html.EscapeString(result.Method), status)
	buf.WriteString(r.highlight(JSON(Payload(result))))
	buf.WriteString(`</details>`)
	return buf.String()
}

func (r *Renderer) highlight(source string) string {
	iterator, err := r.lexer.Tokenise(nil, source)
	if err == nil {
		var buf bytes.Buffer
		if err = r.formatter.Format(&buf, r.style, iterator); err == nil {
			return buf.String()
		}
	}

	log.Printf("⚠️ Renderer: highlight failed, falling back to plain text: %v", err)
	return "<pre>" + html.EscapeString(source) + "</pre>"
}
