package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method  string // empty matches any method
	pattern string
	prefix  bool
	handler http.Handler
}

// Router matches routes in registration order. A "*" segment matches exactly
// one path segment.
type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

// ServeHTTP dispatches req and writes a colored access log line.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	if h, status := r.match(req); h != nil {
		h.ServeHTTP(lrw, req)
	} else if status == http.StatusMethodNotAllowed {
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	} else {
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	duration := time.Since(start)
	color := statusColor(lrw.statusCode)
	methodColor := methodColor(req.Method)

	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor, req.Method, colorReset,
		req.URL.Path,
		color, lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

func (r *Router) match(req *http.Request) (http.Handler, int) {
	pathMatched := false
	for _, rt := range r.routes {
		if !matchWildcardRoute(req.URL.Path, rt.pattern, rt.prefix) {
			continue
		}
		if rt.method == "" || rt.method == req.Method {
			return rt.handler, http.StatusOK
		}
		pathMatched = true
	}
	if pathMatched {
		return nil, http.StatusMethodNotAllowed
	}
	return nil, http.StatusNotFound
}

// matchWildcardRoute checks if a request path matches a wildcard route
// pattern. With prefix set the pattern only has to match the leading segments.
func matchWildcardRoute(requestPath, routePattern string, prefix bool) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	if prefix {
		if len(requestSegments) < len(routeSegments) {
			return false
		}
		requestSegments = requestSegments[:len(routeSegments)]
	} else if len(requestSegments) != len(routeSegments) {
		return false
	}

	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			// Wildcard matches any non-empty segment
			if requestSegments[i] == "" {
				return false
			}
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}
	return true
}

// Segment returns the n-th (zero based) segment of the request path.
func Segment(req *http.Request, n int) string {
	segments := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
	if n < 0 || n >= len(segments) {
		return ""
	}
	return segments[n]
}

// --- Register paths ---
func (r *Router) register(method, path string, handler http.Handler) {
	r.routes = append(r.routes, route{method: method, pattern: path, handler: handler})
}

func (r *Router) GET(path string, handler HandlerFunc) {
	r.register(http.MethodGet, path, http.HandlerFunc(handler))
}
func (r *Router) POST(path string, handler HandlerFunc) {
	r.register(http.MethodPost, path, http.HandlerFunc(handler))
}
func (r *Router) PUT(path string, handler HandlerFunc) {
	r.register(http.MethodPut, path, http.HandlerFunc(handler))
}
func (r *Router) PATCH(path string, handler HandlerFunc) {
	r.register(http.MethodPatch, path, http.HandlerFunc(handler))
}
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, http.HandlerFunc(handler))
}

// Handle mounts handler for every method on path and everything below it.
// A trailing "/*" on path is optional.
func (r *Router) Handle(path string, handler http.Handler) {
	r.routes = append(r.routes, route{
		pattern: strings.TrimSuffix(path, "/*"),
		prefix:  true,
		handler: handler,
	})
}

// Routes lists the registered routes as METHOD:PATH, in match order.
func (r *Router) Routes() []string {
	keys := make([]string, len(r.routes))
	for i, rt := range r.routes {
		method := rt.method
		if method == "" {
			method = "*"
		}
		keys[i] = method + ":" + rt.pattern
	}
	return keys
}

// --- Start server ---

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (r *Router) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Printf("🛑 Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut:
		return colorYellow
	case http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
