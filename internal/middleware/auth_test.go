package middleware

import (
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/taskdeck/backend/internal/auth"
)

var testSecret = []byte("test-secret")

func runGuard(t *testing.T, authorization string) (*fasthttp.RequestCtx, bool) {
	t.Helper()

	called := false
	guard := JWTAuth(testSecret, nil)
	handler := guard(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/tasks")
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}

	handler(ctx)
	return ctx, called
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tok, err := auth.GenerateToken("user-42", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	ctx, called := runGuard(t, "Bearer "+tok)
	if !called {
		t.Fatal("expected handler to run")
	}
	if got := UserID(ctx); got != "user-42" {
		t.Fatalf("UserID = %q, want user-42", got)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctx, called := runGuard(t, "")
	if called {
		t.Fatal("handler must not run without a token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	ctx, called := runGuard(t, "Bearer not.a.jwt")
	if called {
		t.Fatal("handler must not run with a malformed token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	tok, err := auth.GenerateToken("user-42", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	ctx, called := runGuard(t, "Bearer "+tok)
	if called {
		t.Fatal("handler must not run with an expired token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	tok, err := auth.GenerateToken("user-42", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, called := runGuard(t, "Bearer "+tok)
	if called {
		t.Fatal("handler must not run with a forged token")
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS("http://localhost:5173")(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("preflight must not reach the handler")
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/tasks")
	ctx.Request.Header.SetMethod(fasthttp.MethodOptions)

	handler(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusNoContent {
		t.Fatalf("status = %d, want 204", ctx.Response.StatusCode())
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "http://localhost:5173" {
		t.Fatalf("Allow-Origin = %q", got)
	}
}
