//go:build unit

package wifi

import (
	"context"
	"testing"

	"tw-network-manager/internal/mock"
	"tw-network-manager/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManager_Update(t *testing.T) {
	ctx := context.Background()
	profiles := []types.WiFiProfile{
		{ID: "0", SSID: "plant"},
		{ID: "1", SSID: "office"},
	}

	t.Run("ReusesExistingProfile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		supplicant := mock.NewMockWiFiSupplicant(ctrl)

		gomock.InOrder(
			supplicant.EXPECT().ListProfiles(ctx, "wlan0").Return(profiles, nil),
			supplicant.EXPECT().SetSSID(ctx, "wlan0", "1", "office").Return(nil),
			supplicant.EXPECT().SetPSK(ctx, "wlan0", "1", "hunter22").Return(nil),
			supplicant.EXPECT().SelectProfile(ctx, "wlan0", "1").Return(nil),
		)
		supplicant.EXPECT().AddProfile(gomock.Any(), gomock.Any()).Times(0)

		assert.NoError(t, NewManager(supplicant).Update(ctx, "wlan0", "office", "hunter22"))
	})

	t.Run("CreatesMissingProfile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		supplicant := mock.NewMockWiFiSupplicant(ctrl)

		gomock.InOrder(
			supplicant.EXPECT().ListProfiles(ctx, "wlan0").Return(profiles, nil),
			supplicant.EXPECT().AddProfile(ctx, "wlan0").Return("2", nil),
			supplicant.EXPECT().SetSSID(ctx, "wlan0", "2", "lab").Return(nil),
			supplicant.EXPECT().SetPSK(ctx, "wlan0", "2", "").Return(nil),
			supplicant.EXPECT().SelectProfile(ctx, "wlan0", "2").Return(nil),
		)

		assert.NoError(t, NewManager(supplicant).Update(ctx, "wlan0", "lab", ""))
	})

	t.Run("DuplicateSSIDLastWins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		supplicant := mock.NewMockWiFiSupplicant(ctrl)

		duplicated := append(profiles, types.WiFiProfile{ID: "5", SSID: "plant"})
		gomock.InOrder(
			supplicant.EXPECT().ListProfiles(ctx, "wlan0").Return(duplicated, nil),
			supplicant.EXPECT().SetSSID(ctx, "wlan0", "5", "plant").Return(nil),
			supplicant.EXPECT().SetPSK(ctx, "wlan0", "5", "secret").Return(nil),
			supplicant.EXPECT().SelectProfile(ctx, "wlan0", "5").Return(nil),
		)

		assert.NoError(t, NewManager(supplicant).Update(ctx, "wlan0", "plant", "secret"))
	})

	t.Run("ListFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		supplicant := mock.NewMockWiFiSupplicant(ctrl)

		supplicant.EXPECT().ListProfiles(ctx, "wlan0").Return(nil, assert.AnError)

		err := NewManager(supplicant).Update(ctx, "wlan0", "plant", "secret")
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "wifi list profiles", opErr.Op)
	})

	t.Run("AddFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		supplicant := mock.NewMockWiFiSupplicant(ctrl)

		supplicant.EXPECT().ListProfiles(ctx, "wlan0").Return(nil, nil)
		supplicant.EXPECT().AddProfile(ctx, "wlan0").Return("", assert.AnError)

		err := NewManager(supplicant).Update(ctx, "wlan0", "plant", "secret")
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "wifi add profile", opErr.Op)
	})

	t.Run("SelectFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		supplicant := mock.NewMockWiFiSupplicant(ctrl)

		supplicant.EXPECT().ListProfiles(ctx, "wlan0").Return(profiles, nil)
		supplicant.EXPECT().SetSSID(ctx, "wlan0", "0", "plant").Return(nil)
		supplicant.EXPECT().SetPSK(ctx, "wlan0", "0", "secret").Return(nil)
		supplicant.EXPECT().SelectProfile(ctx, "wlan0", "0").Return(assert.AnError)

		err := NewManager(supplicant).Update(ctx, "wlan0", "plant", "secret")
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "wifi select profile", opErr.Op)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
