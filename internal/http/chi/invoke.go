package chi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/webhookconfig-repository/internal/invocation"
	"github.com/marcelsud/webhookconfig-repository/resource"
)

// postInvoke handles POST /v1/invoke
func postInvoke(inv resource.Invoker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req invocation.TestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, badRequest(err))
			return
		}
		defer r.Body.Close()

		logger := httplog.LogEntry(r.Context())
		ctx := logger.WithContext(r.Context())

		writeResponse(w, http.StatusOK, invocation.HandleTest(ctx, inv, req))
	})
}

// postProvider handles POST /v1/provider
func postProvider(inv resource.Invoker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req invocation.HandlerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, badRequest(err))
			return
		}
		defer r.Body.Close()

		logger := httplog.LogEntry(r.Context())
		ctx := logger.WithContext(r.Context())

		writeResponse(w, http.StatusOK, invocation.HandleProvider(ctx, inv, req))
	})
}

func badRequest(err error) invocation.Response {
	return invocation.Response{
		Status:    resource.Failed.String(),
		ErrorCode: resource.InvalidRequest.String(),
		Message:   fmt.Sprintf("decoding request: %v", err),
	}
}

func writeResponse(w http.ResponseWriter, status int, resp invocation.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
