package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/staff/internal/mocks"
	"github.com/samandr77/microservices/staff/internal/service"
	"github.com/samandr77/microservices/staff/pkg/config"
)

const testSecret = "test-secret"

var testCfg = config.Config{
	Session: config.Session{
		Secret:           testSecret,
		TTL:              time.Hour,
		PINAttemptLimit:  5,
		PINLockTime:      15 * time.Minute,
		ProfilesCacheTTL: 10 * time.Minute,
		LivePollInterval: time.Second,
	},
	Validation: validationCfg,
	Jobs: config.Jobs{
		NotificationTTL: 24 * time.Hour,
	},
}

type testDeps struct {
	repo     *mocks.MockRepository
	sessions *mocks.MockSessionStore
	producer *mocks.MockProducer
	push     *mocks.MockPushSender
	mailer   *mocks.MockMailer
	feed     *mocks.MockChangeFeed
}

func newTestService(t *testing.T) (*service.Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := testDeps{
		repo:     mocks.NewMockRepository(ctrl),
		sessions: mocks.NewMockSessionStore(ctrl),
		producer: mocks.NewMockProducer(ctrl),
		push:     mocks.NewMockPushSender(ctrl),
		mailer:   mocks.NewMockMailer(ctrl),
		feed:     mocks.NewMockChangeFeed(ctrl),
	}

	s, err := service.New(testCfg, d.repo, d.sessions, d.producer, d.push, d.mailer, d.feed, nil)
	require.NoError(t, err)

	return s, d
}
