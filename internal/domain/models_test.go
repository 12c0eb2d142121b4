package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOffer_Accepts(t *testing.T) {
	offer := Offer{MinScore: 10, MaxScore: 20}

	tests := []struct {
		name  string
		score int
		want  bool
	}{
		{name: "lower bound", score: 10, want: true},
		{name: "upper bound", score: 20, want: true},
		{name: "inside", score: 15, want: true},
		{name: "below", score: 9, want: false},
		{name: "above", score: 21, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, offer.Accepts(tt.score))
		})
	}

	t.Run("inverted range never accepts", func(t *testing.T) {
		inverted := Offer{MinScore: 20, MaxScore: 10}
		for score := 0; score <= 30; score++ {
			assert.False(t, inverted.Accepts(score))
		}
	})
}

func TestOffer_ActiveAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	offer := Offer{ActiveFrom: now.Add(-time.Hour), ActiveUntil: now.Add(time.Hour)}

	assert.True(t, offer.ActiveAt(now))
	assert.True(t, offer.ActiveAt(offer.ActiveFrom))
	assert.True(t, offer.ActiveAt(offer.ActiveUntil))
	assert.False(t, offer.ActiveAt(offer.ActiveFrom.Add(-time.Second)))
	assert.False(t, offer.ActiveAt(offer.ActiveUntil.Add(time.Second)))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusNew, StatusSent, true},
		{StatusSent, StatusReceived, true},
		{StatusReceived, StatusApproved, true},
		{StatusReceived, StatusRefused, true},
		{StatusApproved, StatusFunded, true},
		{StatusNew, StatusNew, true},
		{StatusNew, StatusFunded, false},
		{StatusRefused, StatusFunded, false},
		{StatusFunded, StatusNew, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestApplicationStatus_Valid(t *testing.T) {
	for s := StatusNew; s <= StatusFunded; s++ {
		assert.True(t, s.Valid())
		assert.NotEmpty(t, s.Label())
	}
	assert.False(t, ApplicationStatus(0).Valid())
	assert.False(t, ApplicationStatus(7).Valid())
}
