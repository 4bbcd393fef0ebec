package httpx

import (
	"encoding/json"
	"net/http"
)

// healthStatus is the /healthz payload. API reports whether /api is forwarded to a backend.
type healthStatus struct {
	Status  string `json:"status"`
	API     string `json:"api"`
	Backend string `json:"backend,omitempty"`
}

// healthHandler answers readiness/liveness checks with the edge server's proxy wiring.
func healthHandler(backend string, proxied bool) http.HandlerFunc {
	st := healthStatus{Status: "ok", API: "unconfigured"}
	if proxied {
		st.API = "proxied"
		st.Backend = backend
	}
	body, _ := json.Marshal(st)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		// Nothing more to do if the client connection is gone.
		_, _ = w.Write(body)
	}
}
