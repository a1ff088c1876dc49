package httpx

import (
	"io"
	"net/http"
)

const healthResponse = `{"status":"ok","service":"guiatur-api"}`

// healthHandler answers readiness/liveness probes. No dependencies are
// checked here; a booting service should report healthy as soon as it
// can serve requests.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
