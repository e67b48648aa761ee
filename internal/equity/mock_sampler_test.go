package equity

import (
	"github.com/stretchr/testify/mock"

	"github.com/lox/headsup-equity/internal/deck"
)

// MockSampler implements deck.Sampler for testing
type MockSampler struct {
	mock.Mock
}

func (m *MockSampler) Draw(banned deck.CardSet) (deck.Card, error) {
	args := m.Called(banned)
	return args.Get(0).(deck.Card), args.Error(1)
}

// deals queues cards to be returned by successive Draw calls
func (m *MockSampler) deals(cards ...deck.Card) *MockSampler {
	for _, c := range cards {
		m.On("Draw", mock.Anything).Return(c, nil).Once()
	}
	return m
}
