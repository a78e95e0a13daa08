//go:build unit

package reconcile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tw-network-manager/internal/mock"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	networkMgr *mock.MockLinkManager
	leases     *mock.MockLeaseManager
	wifi       *mock.MockWiFiProfileManager
	static     *mock.MockStaticConfigurator
	reconciler *Reconciler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		networkMgr: mock.NewMockLinkManager(ctrl),
		leases:     mock.NewMockLeaseManager(ctrl),
		wifi:       mock.NewMockWiFiProfileManager(ctrl),
		static:     mock.NewMockStaticConfigurator(ctrl),
	}
	f.reconciler = NewReconciler(f.networkMgr, f.leases, f.wifi, f.static)
	return f
}

func TestReconciler_WiredDHCPTearsDownLowerClasses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cfg := &types.NetworkConfig{
		Wired:    &types.WiredConfig{Device: "eth0", Enabled: true, DHCP: true},
		WiFi:     &types.WifiConfig{Device: "wlan0", Enabled: true, SSID: "home"},
		Cellular: &types.CellularConfig{Device: "wwan0", Enabled: true},
	}

	gomock.InOrder(
		f.networkMgr.EXPECT().SetLinkDown("eth0").Return(nil),
		f.networkMgr.EXPECT().SetLinkUp("eth0").Return(nil),
		f.leases.EXPECT().Start(ctx, "eth0").Return(nil),
		f.networkMgr.EXPECT().SetLinkDown("wlan0").Return(nil),
		f.leases.EXPECT().Stop(ctx, "wlan0"),
		f.networkMgr.EXPECT().SetLinkDown("wwan0").Return(nil),
		f.leases.EXPECT().Stop(ctx, "wwan0"),
	)

	assert.NoError(t, f.reconciler.Reconcile(ctx, cfg))
}

func TestReconciler_WiredStatic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cfg := &types.NetworkConfig{
		Wired: &types.WiredConfig{
			Device:  "eth0",
			Enabled: true,
			IPv4:    "10.0.0.2",
			Netmask: "255.255.255.0",
			Gateway: "10.0.0.1",
			DNS:     types.DefaultDNS,
		},
	}

	gomock.InOrder(
		f.networkMgr.EXPECT().SetLinkDown("eth0").Return(nil),
		f.leases.EXPECT().Stop(ctx, "eth0"),
		f.static.EXPECT().Apply(ctx, "eth0", types.StaticIPConfig{
			IPAddress: "10.0.0.2",
			Netmask:   "255.255.255.0",
			Gateway:   "10.0.0.1",
			DNS:       types.DefaultDNS,
		}).Return(nil),
	)

	assert.NoError(t, f.reconciler.Reconcile(ctx, cfg))
}

func TestReconciler_DisabledWiredFallsThroughToWiFi(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cfg := &types.NetworkConfig{
		Wired: &types.WiredConfig{Device: "eth0"},
		WiFi:  &types.WifiConfig{Device: "wlan0", Enabled: true, SSID: "home", PSK: "secret"},
	}

	gomock.InOrder(
		f.networkMgr.EXPECT().SetLinkDown("eth0").Return(nil),
		f.leases.EXPECT().Stop(ctx, "eth0"),
		f.wifi.EXPECT().Update(ctx, "wlan0", "home", "secret").Return(nil),
		f.networkMgr.EXPECT().SetLinkDown("wlan0").Return(nil),
		f.networkMgr.EXPECT().SetLinkUp("wlan0").Return(nil),
		f.leases.EXPECT().Start(ctx, "wlan0").Return(nil),
	)

	assert.NoError(t, f.reconciler.Reconcile(ctx, cfg))
}

func TestReconciler_CellularIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cfg := &types.NetworkConfig{
		WiFi:     &types.WifiConfig{Device: "wlan0"},
		Cellular: &types.CellularConfig{Device: "wwan0", Enabled: true},
	}

	// Only the disabled WiFi section is touched
	f.networkMgr.EXPECT().SetLinkDown("wlan0").Return(nil)
	f.leases.EXPECT().Stop(ctx, "wlan0")

	assert.NoError(t, f.reconciler.Reconcile(ctx, cfg))
}

func TestReconciler_ValidationFailuresMutateNothing(t *testing.T) {
	tests := []struct {
		name string
		cfg  *types.NetworkConfig
	}{
		{
			name: "MissingDevice",
			cfg: &types.NetworkConfig{
				Wired: &types.WiredConfig{Enabled: true, DHCP: true},
				WiFi:  &types.WifiConfig{Device: "wlan0"},
			},
		},
		{
			name: "MissingDeviceBelowDisabledSection",
			cfg: &types.NetworkConfig{
				Wired: &types.WiredConfig{Device: "eth0"},
				WiFi:  &types.WifiConfig{Enabled: true, SSID: "home"},
			},
		},
		{
			name: "InvalidStaticAddress",
			cfg: &types.NetworkConfig{Wired: &types.WiredConfig{
				Device:  "eth0",
				Enabled: true,
				IPv4:    "999.1.1.1",
				Netmask: "255.255.255.0",
				Gateway: "10.0.0.1",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any call on a port fails the test
			f := newFixture(t)

			err := f.reconciler.Reconcile(context.Background(), tt.cfg)
			var valErr *types.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}

func TestReconciler_LeaseTimeoutAbortsPass(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cfg := &types.NetworkConfig{
		Wired: &types.WiredConfig{Device: "eth0", Enabled: true, DHCP: true},
		WiFi:  &types.WifiConfig{Device: "wlan0"},
	}

	gomock.InOrder(
		f.networkMgr.EXPECT().SetLinkDown("eth0").Return(nil),
		f.networkMgr.EXPECT().SetLinkUp("eth0").Return(nil),
		f.leases.EXPECT().Start(ctx, "eth0").Return(&types.TimeoutError{Device: "eth0", Timeout: 30 * time.Second}),
	)
	// The lower section is not demoted after a failed activation

	err := f.reconciler.Reconcile(ctx, cfg)
	var timeoutErr *types.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "eth0", timeoutErr.Device)
}

func TestReconciler_LinkUpFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cfg := &types.NetworkConfig{Wired: &types.WiredConfig{Device: "eth0", Enabled: true, DHCP: true}}

	f.networkMgr.EXPECT().SetLinkDown("eth0").Return(nil)
	f.networkMgr.EXPECT().SetLinkUp("eth0").Return(assert.AnError)

	err := f.reconciler.Reconcile(ctx, cfg)
	var opErr *types.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "link up", opErr.Op)
	assert.Equal(t, "eth0", opErr.Device)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReconciler_WiFiProfileFailureStopsBeforeLink(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cfg := &types.NetworkConfig{WiFi: &types.WifiConfig{Device: "wlan0", Enabled: true, SSID: "home"}}

	f.wifi.EXPECT().Update(ctx, "wlan0", "home", "").
		Return(&types.OperationError{Op: "wifi list profiles", Device: "wlan0", Err: assert.AnError})

	err := f.reconciler.Reconcile(ctx, cfg)
	var opErr *types.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "wifi list profiles", opErr.Op)
}

func TestReconciler_Teardown(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingDeviceIsAlreadyDown", func(t *testing.T) {
		f := newFixture(t)
		cfg := &types.NetworkConfig{
			Wired: &types.WiredConfig{Device: "eth0", Enabled: true, DHCP: true},
			WiFi:  &types.WifiConfig{Device: "wlan0"},
		}

		gomock.InOrder(
			f.networkMgr.EXPECT().SetLinkDown("eth0").Return(nil),
			f.networkMgr.EXPECT().SetLinkUp("eth0").Return(nil),
			f.leases.EXPECT().Start(ctx, "eth0").Return(nil),
			f.networkMgr.EXPECT().SetLinkDown("wlan0").Return(fmt.Errorf("failed to find interface wlan0: %w", port.ErrLinkNotFound)),
			f.leases.EXPECT().Stop(ctx, "wlan0"),
		)

		assert.NoError(t, f.reconciler.Reconcile(ctx, cfg))
	})

	t.Run("ReleaseFailureAbortsBeforeActivation", func(t *testing.T) {
		f := newFixture(t)
		cfg := &types.NetworkConfig{
			Wired: &types.WiredConfig{Device: "eth0"},
			WiFi:  &types.WifiConfig{Device: "wlan0", Enabled: true, SSID: "home"},
		}

		f.networkMgr.EXPECT().SetLinkDown("eth0").Return(assert.AnError)

		err := f.reconciler.Reconcile(ctx, cfg)
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "link down", opErr.Op)
		assert.Equal(t, "eth0", opErr.Device)
	})

	t.Run("DemoteFailuresAreJoined", func(t *testing.T) {
		f := newFixture(t)
		cfg := &types.NetworkConfig{
			Wired:    &types.WiredConfig{Device: "eth0", Enabled: true, DHCP: true},
			WiFi:     &types.WifiConfig{Device: "wlan0"},
			Cellular: &types.CellularConfig{Device: "wwan0"},
		}

		gomock.InOrder(
			f.networkMgr.EXPECT().SetLinkDown("eth0").Return(nil),
			f.networkMgr.EXPECT().SetLinkUp("eth0").Return(nil),
			f.leases.EXPECT().Start(ctx, "eth0").Return(nil),
			f.networkMgr.EXPECT().SetLinkDown("wlan0").Return(assert.AnError),
			f.networkMgr.EXPECT().SetLinkDown("wwan0").Return(nil),
			f.leases.EXPECT().Stop(ctx, "wwan0"),
		)

		err := f.reconciler.Reconcile(ctx, cfg)
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "wlan0", opErr.Device)
	})
}
