package weather

import (
	"context"
	"math/rand"
)

// mockConditions is the canned rotation served when no API key is
// configured, so the diary stays fully usable offline.
var mockConditions = []Conditions{
	{22, "sunny"},
	{18, "partly cloudy"},
	{25, "clear skies"},
	{20, "light breeze"},
	{15, "rainy"},
	{30, "hot"},
	{10, "cold"},
	{7, "snowy"},
	{12, "foggy"},
	{28, "humid"},
}

// MockProvider serves a random canned snapshot. It never fails.
type MockProvider struct {
	pick func(n int) int
}

// NewMockProvider returns a provider backed by math/rand.
func NewMockProvider() *MockProvider {
	return &MockProvider{pick: rand.Intn}
}

func (p *MockProvider) Current(_ context.Context) (Conditions, error) {
	return mockConditions[p.pick(len(mockConditions))], nil
}
