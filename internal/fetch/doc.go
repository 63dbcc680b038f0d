// Package fetch performs the single blocking HTTP GET used for both the
// source page and every popularity lookup.
//
// A fetch either returns a *Page holding the HTML body or an error; there is
// no third "empty" outcome. All failures are reported as *Error values whose
// Reason tells transport problems, bad status codes and non-HTML responses
// apart:
//
//	page, err := fetcher.Get(ctx, "http://www.fabpedigree.com/james/mathmen.htm")
//	if errors.Is(err, fetch.ErrNotHTML) {
//	    // the server answered, but not with a page we can parse
//	}
//
// The fetcher applies no timeout of its own. A hung server holds the request
// for as long as the transport allows, unless the caller's context ends.
package fetch
