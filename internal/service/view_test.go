package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/mocks"
	mockauth "github.com/target/stylist-web/internal/mocks/auth"
	"go.uber.org/mock/gomock"
)

func TestViewOf(t *testing.T) {
	tests := []struct {
		name string
		user *domainauth.User
		want View
	}{
		{name: "anonymous", want: View{}},
		{
			name: "trial",
			user: &domainauth.User{ID: "u1", TrialDaysLeft: 5},
			want: View{TrialDaysLeft: 5, IsTrialActive: true, IsAuthenticated: true},
		},
		{
			name: "expired trial",
			user: &domainauth.User{ID: "u1", TrialDaysLeft: 0},
			want: View{IsAuthenticated: true},
		},
		{
			name: "premium",
			user: &domainauth.User{ID: "u1", IsPremium: true},
			want: View{IsPremium: true, IsAuthenticated: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := State{User: tt.user, IsAuthenticated: tt.user != nil}
			got := ViewOf(st)
			tt.want.User = tt.user
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthFlow_LoginNavigatesHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAuthAPI(ctrl)
	f := newSession(t, api)
	nav := mockauth.NewRecordingNavigator("/login")
	flow := NewAuthFlow(f.svc, nav)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(domainauth.AuthResult{User: trialUser("u1", 0), Token: "tok"}, nil)
	require.NoError(t, flow.Login(context.Background(), domainauth.LoginCredentials{Email: "a@b.c", Password: "secret1"}))
	assert.Equal(t, []string{HomePath}, nav.Visited())
}

func TestAuthFlow_FailedLoginStays(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAuthAPI(ctrl)
	f := newSession(t, api)
	nav := mockauth.NewRecordingNavigator("/login")
	flow := NewAuthFlow(f.svc, nav)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(domainauth.AuthResult{}, unauthorized())
	require.Error(t, flow.Login(context.Background(), domainauth.LoginCredentials{Email: "a@b.c", Password: "nope!!"}))
	assert.Empty(t, nav.Visited())
}

func TestAuthFlow_SignupAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAuthAPI(ctrl)
	f := newSession(t, api)
	nav := mocks.NewMockNavigator(ctrl)
	flow := NewAuthFlow(f.svc, nav)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(domainauth.AuthResult{User: trialUser("u1", 0), Token: "tok"}, nil),
		nav.EXPECT().Navigate(gomock.Any(), HomePath),
		api.EXPECT().Logout(gomock.Any()).Return(nil),
		nav.EXPECT().Navigate(gomock.Any(), LoginPath),
	)

	require.NoError(t, flow.Signup(ctx, domainauth.SignupCredentials{Name: "Ada", Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret1"}))
	flow.Logout(ctx)
	assert.False(t, f.svc.IsAuthenticated())
}

func TestAuthFlow_MountRecomputesTrial(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAuthAPI(ctrl)
	f := newSession(t, api)
	ctx := context.Background()

	user := trialUser("u1", 20*24*time.Hour)
	user.TrialDaysLeft = 7
	require.NoError(t, f.snapshots.Save(ctx, domainauth.Snapshot{User: user, IsAuthenticated: true}))
	require.NoError(t, f.svc.Restore(ctx))

	v := NewAuthFlow(f.svc, nil).Mount(ctx)
	assert.Equal(t, 0, v.TrialDaysLeft)
	assert.False(t, v.IsTrialActive)
}
