// Package stubserver serves the same canned fixtures the API gateway
// falls back to, over a real HTTP transport. It exists so the app can
// be demoed end-to-end without the real backend - it holds no state,
// dispatches no alerts, and computes nothing.
package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/raksha-app/raksha/apiclient"
	"github.com/raksha-app/raksha/colors"
	"go.uber.org/zap"
)

type Server struct {
	router *mux.Router
	logg   *zap.SugaredLogger
}

func New(logg *zap.SugaredLogger) *Server {
	server := &Server{router: mux.NewRouter(), logg: logg}
	server.registerRoutes()

	return server
}

func (s *Server) registerRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.loggingMiddleware, contentTypeMiddleware)

	api.HandleFunc("/login", s.loginHandler).Methods("POST")
	api.HandleFunc("/register", s.cannedHandler(apiclient.OpRegister)).Methods("POST")
	api.HandleFunc("/contacts", s.cannedHandler(apiclient.OpListContacts)).Methods("GET")
	api.HandleFunc("/contacts", s.cannedHandler(apiclient.OpAddContact)).Methods("POST")
	api.HandleFunc("/contacts/{id}", s.cannedHandler(apiclient.OpDeleteContact)).Methods("DELETE")
	api.HandleFunc("/panic", s.cannedHandler(apiclient.OpTriggerPanic)).Methods("POST")
	api.HandleFunc("/panic/resolve", s.cannedHandler(apiclient.OpResolvePanic)).Methods("POST")
	api.HandleFunc("/chat", s.cannedHandler(apiclient.OpLegalChat)).Methods("POST")
	api.HandleFunc("/generate-safe-route", s.cannedHandler(apiclient.OpSafeRoute)).Methods("POST")
	api.HandleFunc("/location", s.cannedHandler(apiclient.OpReportLocation)).Methods("POST")
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(port int) error {
	s.logg.Infof("Raksha API stub is listening on port:%v", port)
	return http.ListenAndServe(fmt.Sprintf(":%v", port), s.router)
}

// ---------------------------------------------------------------------------------//
// Handlers
// --------------------------------------------------------------------------------//

// loginHandler is the only route that looks at its request body: the
// demo account signs in, everyone else gets a 401.
func (s *Server) loginHandler(rw http.ResponseWriter, r *http.Request) {
	params := apiclient.LoginParams{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(rw, "invalid request body", http.StatusBadRequest)
		return
	}

	content, err := apiclient.DemoResponse(apiclient.OpLogin, params)
	if errors.Is(err, apiclient.ErrInvalidCredentials) {
		writeError(rw, err.Error(), http.StatusUnauthorized)
		return
	}

	if err != nil {
		writeError(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	rw.Write(content)
}

func (s *Server) cannedHandler(op apiclient.Operation) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		content, err := apiclient.DemoResponse(op, nil)
		if err != nil {
			writeError(rw, err.Error(), http.StatusInternalServerError)
			return
		}

		rw.Write(content)
	}
}

func writeError(rw http.ResponseWriter, message string, statusCode int) {
	rw.WriteHeader(statusCode)
	json.NewEncoder(rw).Encode(map[string]string{"message": message})
}

// ---------------------------------------------------------------------------------//
// Middlewares
// --------------------------------------------------------------------------------//

type responseWriterWithStatus struct {
	http.ResponseWriter
	Status int
}

func (r *responseWriterWithStatus) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		responseWriter := &responseWriterWithStatus{
			ResponseWriter: w,
			Status:         200,
		}

		defer func() {
			responseStatus := colors.Green(responseWriter.Status)
			if responseWriter.Status >= 400 {
				responseStatus = colors.Red(responseWriter.Status)
			}

			s.logg.Infof("%s %s %s %s",
				r.Method,
				r.RequestURI,
				responseStatus,
				colors.Yellow(fmt.Sprintf("[%v]", time.Since(start))))
		}()

		next.ServeHTTP(responseWriter, r)
	})
}

func contentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
