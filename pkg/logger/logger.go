package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

const originService = "staff"

type ctxKey uint8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyStaffID
	ctxKeyDeviceID
	ctxKeyLogType
	ctxKeyMethod
	ctxKeyURL
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok && v != "" {
		record.Add("request_id", v)
	}

	// staff_id is always present, null before PIN entry
	if v, ok := ctx.Value(ctxKeyStaffID).(string); ok && v != "" {
		record.Add("staff_id", v)
	} else {
		record.Add("staff_id", nil)
	}

	if v, ok := ctx.Value(ctxKeyDeviceID).(string); ok && v != "" {
		record.Add("device_id", v)
	}

	if v, ok := ctx.Value(ctxKeyLogType).(string); ok && v != "" {
		record.Add("type", v)
	}

	if v, ok := ctx.Value(ctxKeyMethod).(string); ok && v != "" {
		record.Add("method", v)
	}

	if v, ok := ctx.Value(ctxKeyURL).(string); ok && v != "" {
		record.Add("url", v)
	}

	record.Add("origin_service", originService)

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

func New(level slog.Level) *slog.Logger {
	return slog.New(&Handler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
	})
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, reqID)
}

func SetStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, ctxKeyStaffID, staffID)
}

func SetDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, ctxKeyDeviceID, deviceID)
}

func SetLogType(ctx context.Context, logType string) context.Context {
	return context.WithValue(ctx, ctxKeyLogType, logType)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, ctxKeyMethod, method)
}

func SetURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, ctxKeyURL, url)
}

func RequestIDFromCtx(ctx context.Context) string {
	requestID, ok := ctx.Value(ctxKeyRequestID).(string)
	if !ok {
		return ""
	}

	return requestID
}
