package handler

import (
	"fmt"
	"net/http"
)

// GetHello handles GET /hello, a plain-text greeting derived from the
// User-Agent header. It shares no state with the planner; it exists as a
// smoke-test route that works without a database.
func (s *Server) GetHello(w http.ResponseWriter, r *http.Request) {
	who := r.UserAgent()
	if who == "" {
		who = "Human"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Hello, %s! Your request was handled by the zeilplanner API.", who)
}
