// Package navigation provides helpers for safe redirects after form
// submissions.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// SafeReturnURL extracts and validates a "return" URL from the request
// query or form body. Unsafe values (absolute URLs, protocol-relative
// tricks) and values that don't pass the open-redirect check fall back
// to the given default, so a hostile return param can never send the
// user off-site.
func SafeReturnURL(r *http.Request, fallback string) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret == "" {
		return fallback
	}
	return ret
}
