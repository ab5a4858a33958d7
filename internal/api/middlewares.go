package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

type AuthService interface {
	Authenticate(ctx context.Context, token, deviceID string) (entity.StaffSession, entity.StaffProfile, error)
}

type ctxKeyIP struct{}

// tokenExtractor reads the session token from the Authorization header and, for
// websocket upgrades that cannot set headers, from the access_token query argument.
var tokenExtractor = request.MultiExtractor{
	request.BearerExtractor{},
	request.ArgumentExtractor{"access_token"},
}

type Middleware struct {
	auth AuthService
}

func NewMiddleware(auth AuthService) *Middleware {
	return &Middleware{
		auth: auth,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), requestID)
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)

		w.Header().Set("X-Request-Id", requestID)

		headers := ""

		for k, v := range r.Header {
			if k == "Authorization" || k == "Cookie" {
				continue
			}

			headers += fmt.Sprintf("%s: %s,\n", k, v)
		}

		slog.InfoContext(ctx, "incoming request", "headers", headers, "user_ip", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), errInternalText)
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Device-Id, X-Request-Id")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			ip = host
		}

		ctx := context.WithValue(r.Context(), ctxKeyIP{}, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithDevice resolves the device scope of a request: the X-Device-Id header, or a
// fingerprint of the client IP and user agent when the app did not send one.
func (m *Middleware) WithDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := r.Header.Get("X-Device-Id")
		if deviceID == "" {
			ip, _ := r.Context().Value(ctxKeyIP{}).(string)
			deviceID = DeviceFingerprint(ip, r.UserAgent())
		}

		ctx := entity.CtxWithDeviceID(r.Context(), deviceID)
		ctx = logger.SetDeviceID(ctx, deviceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func DeviceFingerprint(ip, userAgent string) string {
	sum := sha256.Sum256([]byte(ip + "|" + userAgent))
	return "fp-" + hex.EncodeToString(sum[:16])
}

// Auth admits requests carrying a session token that is still current on the calling device.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokenExtractor.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "No session token")
			return
		}

		session, profile, err := m.auth.Authenticate(ctx, token, entity.DeviceIDFromCtx(ctx))
		if err != nil {
			SendServiceErr(ctx, w, err, "Authentication failed")
			return
		}

		ctx = entity.CtxWithStaff(ctx, profile)
		ctx = entity.CtxWithSession(ctx, session)
		ctx = logger.SetStaffID(ctx, profile.ID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAssigner lets through only staff allowed to create assignments for others.
func (m *Middleware) RequireAssigner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		staff, err := entity.StaffFromCtx(ctx)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Session is missing or expired")
			return
		}

		if !staff.Role.CanAssign() {
			SendErr(ctx, w, http.StatusForbidden, fmt.Errorf("%w: role %s", entity.ErrForbidden, staff.Role),
				"Only managers can assign jobs")
			return
		}

		next.ServeHTTP(w, r)
	})
}
