package board

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/WahpiTrex/Draw2Gather/drawing"
)

// --- NetworkSession ---

type MockNetworkSession struct {
	mock.Mock
}

func (m *MockNetworkSession) Close(reason string) {
	m.Called(reason)
}

func (m *MockNetworkSession) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockNetworkSession) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockNetworkSession) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- TickerCreator ---

type MockTickerCreator struct {
	mock.Mock
}

func (m *MockTickerCreator) Create(d time.Duration) <-chan time.Time {
	args := m.Called(d)
	return args.Get(0).(chan time.Time)
}

// --- helpers ---

// newTestSession builds a session with a deterministic identity, bypassing
// the random generator so task assertions can name their recipients.
func newTestSession(hub *Hub, id, name string) *session {
	s := &session{
		id: id,
		user: Participant{
			ID:    id,
			Name:  name,
			Color: drawing.RGB{R: 0xFF, G: 0x6B, B: 0x6B},
		},
		outbox: make(chan []byte, 256),
		pings:  make(chan struct{}, 1),
		hub:    hub,
	}
	hub.sessions[id] = s
	return s
}
