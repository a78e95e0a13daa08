//go:build unit

package static

import (
	"context"
	"net"
	"testing"

	"tw-network-manager/internal/mock"
	"tw-network-manager/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManager_Apply(t *testing.T) {
	ctx := context.Background()
	staticConfig := types.StaticIPConfig{
		IPAddress: "192.168.1.100",
		Netmask:   "255.255.255.192",
		Gateway:   "192.168.1.1",
		DNS:       "8.8.8.8",
	}

	t.Run("SuccessfulConfiguration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		networkMgr := mock.NewMockLinkManager(ctrl)
		dns := mock.NewMockDNSRegistry(ctrl)

		gomock.InOrder(
			networkMgr.EXPECT().SetLinkUp("eth0").Return(nil),
			networkMgr.EXPECT().ReplaceAddress("eth0", &net.IPNet{
				IP:   net.IPv4(192, 168, 1, 100).To4(),
				Mask: net.CIDRMask(26, 32),
			}).Return(nil),
			networkMgr.EXPECT().ReplaceDefaultRoute("eth0", net.IPv4(192, 168, 1, 1).To4()).Return(nil),
			dns.EXPECT().Register(ctx, "eth0", []net.IP{net.IPv4(8, 8, 8, 8).To4()}).Return(nil),
		)

		err := NewManager(networkMgr, dns).Apply(ctx, "eth0", staticConfig)
		assert.NoError(t, err)
	})

	t.Run("RouteFailureStopsBeforeDNS", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		networkMgr := mock.NewMockLinkManager(ctrl)
		dns := mock.NewMockDNSRegistry(ctrl)

		networkMgr.EXPECT().SetLinkUp("eth0").Return(nil)
		networkMgr.EXPECT().ReplaceAddress("eth0", gomock.Any()).Return(nil)
		networkMgr.EXPECT().ReplaceDefaultRoute("eth0", gomock.Any()).Return(assert.AnError)
		// No DNS registration after a failed route replacement

		err := NewManager(networkMgr, dns).Apply(ctx, "eth0", staticConfig)
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "replace default route", opErr.Op)
		assert.Equal(t, "eth0", opErr.Device)
	})

	t.Run("LinkUpFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		networkMgr := mock.NewMockLinkManager(ctrl)
		dns := mock.NewMockDNSRegistry(ctrl)

		networkMgr.EXPECT().SetLinkUp("eth0").Return(assert.AnError)

		err := NewManager(networkMgr, dns).Apply(ctx, "eth0", staticConfig)
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "link up", opErr.Op)
	})

	t.Run("DNSFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		networkMgr := mock.NewMockLinkManager(ctrl)
		dns := mock.NewMockDNSRegistry(ctrl)

		networkMgr.EXPECT().SetLinkUp("eth0").Return(nil)
		networkMgr.EXPECT().ReplaceAddress("eth0", gomock.Any()).Return(nil)
		networkMgr.EXPECT().ReplaceDefaultRoute("eth0", gomock.Any()).Return(nil)
		dns.EXPECT().Register(ctx, "eth0", gomock.Any()).Return(assert.AnError)

		err := NewManager(networkMgr, dns).Apply(ctx, "eth0", staticConfig)
		var opErr *types.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "configure dns", opErr.Op)
	})

	t.Run("NonContiguousNetmaskIsPermissive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		networkMgr := mock.NewMockLinkManager(ctrl)
		dns := mock.NewMockDNSRegistry(ctrl)

		odd := staticConfig
		odd.Netmask = "255.0.255.0"

		networkMgr.EXPECT().SetLinkUp("eth0").Return(nil)
		networkMgr.EXPECT().ReplaceAddress("eth0", gomock.Any()).DoAndReturn(func(name string, addr *net.IPNet) error {
			ones, _ := addr.Mask.Size()
			assert.Equal(t, 24, ones)
			return nil
		})
		networkMgr.EXPECT().ReplaceDefaultRoute("eth0", gomock.Any()).Return(nil)
		dns.EXPECT().Register(ctx, "eth0", gomock.Any()).Return(nil)

		assert.NoError(t, NewManager(networkMgr, dns).Apply(ctx, "eth0", odd))
	})

	t.Run("UnparseableAddress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		networkMgr := mock.NewMockLinkManager(ctrl)
		dns := mock.NewMockDNSRegistry(ctrl)

		bad := staticConfig
		bad.IPAddress = "999.1.1.1"

		err := NewManager(networkMgr, dns).Apply(ctx, "eth0", bad)
		assert.Error(t, err)
	})
}
