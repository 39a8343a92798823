// Package web embeds the single-page client and serves it from the API binary.
package web

import (
	"embed"
	"mime"
	"path"
	"strings"

	"github.com/valyala/fasthttp"
)

//go:embed static
var assets embed.FS

// Handler serves the embedded client. "/" returns the page shell; everything
// under /static/ maps straight into the embedded tree.
func Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		reqPath := string(ctx.Path())

		name := "static/index.html"
		if strings.HasPrefix(reqPath, "/static/") {
			name = path.Clean(strings.TrimPrefix(reqPath, "/"))
		}

		body, err := assets.ReadFile(name)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			return
		}

		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		ctx.Response.Header.SetContentType(contentType)
		ctx.SetBody(body)
	}
}
