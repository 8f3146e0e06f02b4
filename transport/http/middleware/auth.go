package middleware

import (
	"crypto/subtle"
	"net/http"

	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"
)

// APIKey guards mutating endpoints with a shared key when one is configured.
// Read-only requests and deployments without a key pass through.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		configuredKey := a.config.App.APIKey

		if configuredKey == "" || request.Method == http.MethodGet || request.Method == http.MethodOptions {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
			err := failure.ForbiddenError

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.SetAttribute("http.source", "internal")
		scope.End()

		next.ServeHTTP(writer, request)
	})
}
