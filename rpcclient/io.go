package rpcclient

import (
	"io"
	"net/http"
)

// readAll drains resp.Body with no size limit beyond what the caller's
// context timeout already bounds in time; JSON-RPC single-object responses
// are small, so no separate byte cap is imposed here.
func readAll(resp *http.Response) ([]byte, error) {
	return io.ReadAll(resp.Body)
}
