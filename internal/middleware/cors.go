package middleware

import "github.com/valyala/fasthttp"

// CORS answers preflight requests and stamps the allowed origin on every
// response so a separately hosted client build can still call the API.
func CORS(allowOrigin string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Response.Header.Set("Access-Control-Allow-Origin", allowOrigin)
			ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			ctx.Response.Header.Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")

			if string(ctx.Method()) == fasthttp.MethodOptions {
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}
			next(ctx)
		}
	}
}
