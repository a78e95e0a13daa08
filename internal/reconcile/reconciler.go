package reconcile

import (
	"context"
	"errors"

	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"

	"github.com/sirupsen/logrus"
)

// Reconciler executes arbitration plans against the network ports.
// It implements the Reconciler port.
type Reconciler struct {
	networkMgr port.LinkManager
	leases     port.LeaseManager
	wifi       port.WiFiProfileManager
	static     port.StaticConfigurator
}

// Ensure Reconciler implements the Reconciler port
var _ port.Reconciler = (*Reconciler)(nil)

// NewReconciler creates a reconciler.
func NewReconciler(networkMgr port.LinkManager, leases port.LeaseManager, wifi port.WiFiProfileManager, static port.StaticConfigurator) *Reconciler {
	return &Reconciler{
		networkMgr: networkMgr,
		leases:     leases,
		wifi:       wifi,
		static:     static,
	}
}

// Reconcile runs one complete pass for cfg. Validation errors are returned
// before any mutation; operation errors abort the pass and leave earlier steps applied.
func (r *Reconciler) Reconcile(ctx context.Context, cfg *types.NetworkConfig) error {
	logger := logging.WithComponent("reconcile")
	logger.Info("Prepare to update interfaces")

	plan, err := Arbitrate(cfg)
	if err != nil {
		return err
	}

	for _, td := range plan.Release {
		logger.WithFields(logrus.Fields{"class": td.Class, "interface": td.Device}).Info("Configuration present and DISABLED")
		if err := r.teardown(ctx, td); err != nil {
			return err
		}
	}

	switch plan.Active {
	case ClassWired:
		err = r.activateWired(ctx, cfg.Wired)
	case ClassWiFi:
		err = r.activateWiFi(ctx, cfg.WiFi)
	case ClassCellular:
		logger.WithFields(logrus.Fields{"class": ClassCellular, "interface": cfg.Cellular.Device}).
			Warn("Cellular configuration present and ENABLED, activation is not implemented")
	default:
		logger.Info("No interface class enabled")
	}
	if err != nil {
		return err
	}

	// Lower priority devices go down even if one of them fails; the activation stands
	var errs []error
	for _, td := range plan.Demote {
		if err := r.teardown(ctx, td); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Reconciler) activateWired(ctx context.Context, wired *types.WiredConfig) error {
	logger := logging.WithComponentAndInterface("reconcile", wired.Device).WithField("class", ClassWired)

	if wired.DHCP {
		logger.Info("Wired configuration present and ENABLED, using DHCP")
		if err := r.cycleLink(wired.Device); err != nil {
			return err
		}
		return r.leases.Start(ctx, wired.Device)
	}

	logger.Info("Wired configuration present and ENABLED, using static config")
	if err := r.linkDown(wired.Device); err != nil {
		return err
	}
	r.leases.Stop(ctx, wired.Device)
	return r.static.Apply(ctx, wired.Device, wired.Static())
}

func (r *Reconciler) activateWiFi(ctx context.Context, wifi *types.WifiConfig) error {
	logger := logging.WithComponentAndInterface("reconcile", wifi.Device).WithField("class", ClassWiFi)
	logger.WithField("ssid", wifi.SSID).Info("WiFi configuration present and ENABLED")

	if err := r.wifi.Update(ctx, wifi.Device, wifi.SSID, wifi.PSK); err != nil {
		return err
	}
	if err := r.cycleLink(wifi.Device); err != nil {
		return err
	}
	return r.leases.Start(ctx, wifi.Device)
}

// cycleLink brings the device down and up again.
func (r *Reconciler) cycleLink(device string) error {
	if err := r.linkDown(device); err != nil {
		return err
	}
	logging.WithComponentAndInterface("reconcile", device).Info("ip link up")
	if err := r.networkMgr.SetLinkUp(device); err != nil {
		return &types.OperationError{Op: "link up", Device: device, Err: err}
	}
	return nil
}

func (r *Reconciler) linkDown(device string) error {
	logging.WithComponentAndInterface("reconcile", device).Info("ip link down")
	if err := r.networkMgr.SetLinkDown(device); err != nil {
		return &types.OperationError{Op: "link down", Device: device, Err: err}
	}
	return nil
}

// teardown brings a device down and stops its DHCP client. A device that does not
// exist is already down.
func (r *Reconciler) teardown(ctx context.Context, td Teardown) error {
	logger := logging.WithComponentAndInterface("reconcile", td.Device).WithField("class", td.Class)
	logger.Info("Tearing down interface")

	if err := r.networkMgr.SetLinkDown(td.Device); err != nil {
		if !errors.Is(err, port.ErrLinkNotFound) {
			return &types.OperationError{Op: "link down", Device: td.Device, Err: err}
		}
		logger.WithError(err).Warn("Interface not present, treating as down")
	}
	r.leases.Stop(ctx, td.Device)
	return nil
}
