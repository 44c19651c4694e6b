// Package veneerhttp applies decorator stacks to http.Handler
// payloads.  A handler wrapped in veneer decorators can be served
// directly, with the stack's capability state rendered as response
// headers by standard server middleware.
package veneerhttp

import (
	"net/http"
	"strconv"

	"github.com/justinas/alice"
	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/httpaux/server"

	"github.com/xmidt-org/veneer"
)

// Response header names for the built-in capabilities
const (
	LabelHeader   = "X-Veneer-Label"
	ChangedHeader = "X-Veneer-Changed"
	TagHeader     = "X-Veneer-Tag"
)

// Handler returns the http.Handler payload at the bottom of a stack.
func Handler(stack any) (http.Handler, error) {
	return veneer.Payload[http.Handler](stack)
}

// Headers renders a stack's capability state as HTTP headers.  Each
// built-in capability contributes one header, and capabilities the
// stack does not offer (or offers ambiguously) are simply skipped.
func Headers(stack any) http.Header {
	h := make(http.Header)

	if lh, err := veneer.Find[veneer.LabelHost](stack); err == nil {
		h.Set(LabelHeader, lh.Label())
	}

	if fh, err := veneer.Find[veneer.FlagHost](stack); err == nil {
		h.Set(ChangedHeader, strconv.FormatBool(fh.Changed()))
	}

	if th, err := veneer.Find[veneer.TagHost](stack); err == nil {
		h.Set(TagHeader, th.Tag().String())
	}

	return h
}

// Middleware returns a server middleware that adds the stack's
// capability headers to every response.  The returned closure is
// usable anywhere a constructor of the justinas/alice form is
// accepted.
func Middleware(stack any) func(http.Handler) http.Handler {
	header := httpaux.NewHeader(Headers(stack))
	return server.Header(header.SetTo)
}

// Then resolves a stack's http.Handler payload and wraps it in the
// stack's own capability headers, yielding a handler ready to serve.
func Then(stack any) (http.Handler, error) {
	h, err := Handler(stack)
	if err != nil {
		return nil, err
	}

	return Middleware(stack)(h), nil
}

// NewChain builds an alice.Chain that applies each stack's capability
// headers in the order given.
func NewChain(stacks ...any) alice.Chain {
	constructors := make([]alice.Constructor, 0, len(stacks))
	for _, s := range stacks {
		constructors = append(constructors, Middleware(s))
	}

	return alice.New(constructors...)
}
