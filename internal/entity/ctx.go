package entity

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type (
	ctxKeyStaff    struct{}
	ctxKeySession  struct{}
	ctxKeyDeviceID struct{}
)

func CtxWithStaff(ctx context.Context, staff StaffProfile) context.Context {
	return context.WithValue(ctx, ctxKeyStaff{}, staff)
}

func StaffFromCtx(ctx context.Context) (StaffProfile, error) {
	staff, ok := ctx.Value(ctxKeyStaff{}).(StaffProfile)
	if !ok || staff.ID == uuid.Nil {
		return StaffProfile{}, ErrUnauthenticated
	}

	return staff, nil
}

func CtxWithSession(ctx context.Context, session StaffSession) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, session)
}

func SessionFromCtx(ctx context.Context) (StaffSession, error) {
	session, ok := ctx.Value(ctxKeySession{}).(StaffSession)
	if !ok {
		return StaffSession{}, ErrUnauthenticated
	}

	return session, nil
}

func CtxWithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, ctxKeyDeviceID{}, deviceID)
}

func DeviceIDFromCtx(ctx context.Context) string {
	deviceID, ok := ctx.Value(ctxKeyDeviceID{}).(string)
	if !ok {
		return ""
	}

	return deviceID
}
