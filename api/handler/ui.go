package handler

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/valyala/fasthttp"
)

//go:embed index.html.tmpl
var indexTemplate string

// UIHandler serves the thin server-rendered index page. The page is rendered
// once at startup; the diagnostic button is only included in development.
type UIHandler struct {
	page []byte
}

func NewUIHandler(appName, environment string) (*UIHandler, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		AppName     string
		Development bool
	}{
		AppName:     appName,
		Development: environment == "development",
	})
	if err != nil {
		return nil, err
	}

	return &UIHandler{page: buf.Bytes()}, nil
}

// @Summary Index page
// @Router / [get]
func (h *UIHandler) Index(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(h.page)
}
