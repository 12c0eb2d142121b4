package offerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	now     = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lender  = domain.Actor{UserID: 1, Role: domain.RoleLender, OrgID: 3}
	partner = domain.Actor{UserID: 2, Role: domain.RolePartner, OrgID: 5}
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	s := New(repo)
	s.now = func() time.Time { return now }
	return s, repo
}

func validOffer() *domain.Offer {
	return &domain.Offer{
		Name: "Mortgage", Category: domain.CategoryMortgage, MinScore: 10, MaxScore: 20,
		ActiveFrom: now, ActiveUntil: now.Add(time.Hour),
	}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.Actor
		offer   func() *domain.Offer
		setup   func(repo *MockRepo)
		wantErr error
	}{
		{
			name:  "Lender creates offer",
			actor: lender,
			offer: validOffer,
			setup: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Offer) error {
					o.ID = 9
					return nil
				})
			},
		},
		{
			name:    "Partner cannot create offers",
			actor:   partner,
			offer:   validOffer,
			wantErr: domain.ErrForbidden,
		},
		{
			name:  "Inverted score range",
			actor: lender,
			offer: func() *domain.Offer {
				o := validOffer()
				o.MinScore, o.MaxScore = 30, 20
				return o
			},
			wantErr: domain.ErrInvalidScoreRange,
		},
		{
			name:  "Unknown category",
			actor: lender,
			offer: func() *domain.Offer {
				o := validOffer()
				o.Category = 7
				return o
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:  "Window ends before it starts",
			actor: lender,
			offer: func() *domain.Offer {
				o := validOffer()
				o.ActiveUntil = now.Add(-time.Hour)
				return o
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:  "Empty name",
			actor: lender,
			offer: func() *domain.Offer {
				o := validOffer()
				o.Name = " "
				return o
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:  "Repository error",
			actor: lender,
			offer: validOffer,
			setup: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := NewMock(t)
			if tt.setup != nil {
				tt.setup(repo)
			}
			offer, err := s.Create(context.Background(), tt.actor, tt.offer())
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, offer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 9, offer.ID)
			assert.Equal(t, lender.OrgID, offer.LenderID)
		})
	}
}

func TestService_ListActive(t *testing.T) {
	s, repo := NewMock(t)
	ctx := context.Background()
	lenderID := lender.OrgID

	repo.EXPECT().FindActive(ctx, now, nil).Return([]domain.Offer{{ID: 1}, {ID: 2}}, nil)
	offers, err := s.ListActive(ctx, partner)
	require.NoError(t, err)
	assert.Len(t, offers, 2)

	repo.EXPECT().FindActive(ctx, now, &lenderID).Return([]domain.Offer{{ID: 1}}, nil)
	offers, err = s.ListActive(ctx, lender)
	require.NoError(t, err)
	assert.Len(t, offers, 1)

	_, err = s.ListActive(ctx, domain.Actor{UserID: 9})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   domain.Actor
		offer   *domain.Offer
		repoErr error
		wantErr error
	}{
		{name: "Partner sees any offer", actor: partner, offer: &domain.Offer{ID: 1, LenderID: 8}},
		{name: "Lender sees own offer", actor: lender, offer: &domain.Offer{ID: 1, LenderID: 3}},
		{name: "Lender does not see foreign offer", actor: lender, offer: &domain.Offer{ID: 1, LenderID: 8}, wantErr: domain.ErrNotFound},
		{name: "Missing offer", actor: partner, wantErr: domain.ErrNotFound},
		{name: "Repository error", actor: partner, repoErr: errors.New("database error"), wantErr: errors.New("database error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := NewMock(t)
			repo.EXPECT().FindByID(ctx, 1).Return(tt.offer, tt.repoErr)

			offer, err := s.Get(ctx, tt.actor, 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offer, offer)
		})
	}
}
