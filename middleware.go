package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-park-mail-ru/2019_1_Remastered/metrics"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// unmatchedRoute метка для запросов, которые не попали ни в один роут
const unmatchedRoute = "unmatched"

type routeKey struct{}

// routeInfo заполняется внутри роутера, читается в AccessLogMiddleware
type routeInfo struct {
	template string
}

// statusWriter запоминает код ответа
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.code = code
	sw.ResponseWriter.WriteHeader(code)
}

// RecoverMiddleware ловит паники и кидает 500ки
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.WithField("method", "RECOVER").Error(err)
				utils.NewErrorResponseWriter(w, utils.GetLogger(r, "RecoverMiddleware")).
					WriteError(http.StatusInternalServerError, utils.ErrInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// AccessLogMiddleware логирование всех запросов и метрики по ним
func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := uuid.New().String()
		info := &routeInfo{template: unmatchedRoute}
		ctx := context.WithValue(r.Context(), utils.RequestUUIDKey, token)
		ctx = context.WithValue(ctx, routeKey{}, info)

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r.WithContext(ctx))
		elapsed := time.Since(start)

		metrics.ObserveRequest(info.template, sw.code, elapsed)
		log.WithFields(log.Fields{
			"token":       token[:8],
			"method":      r.Method,
			"route":       info.template,
			"code":        sw.code,
			"remote_addr": r.RemoteAddr,
			"work_time":   elapsed.Seconds(),
		}).Info(r.URL.Path)
	})
}

// RouteMiddleware отдаёт шаблон сматченного роута наверх в AccessLogMiddleware,
// вешается через router.Use
func RouteMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, ok := r.Context().Value(routeKey{}).(*routeInfo); ok {
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					info.template = tmpl
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}

// WithLimiter для запросов, у которых есть ограничение в секунду
//nolint: interfacer
func WithLimiter(next http.HandlerFunc, limiter *rate.Limiter) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			utils.GetLogger(r, "WithLimiter").Warn("too many requests")
			http.Error(w, "", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
