// Package store implements the in-game app store: a purchase flow that debits
// the wallet and drops an installer file into the downloads directory, and an
// install flow that turns an owned app into a launchable one. Ownership and
// installation live in the persisted snapshot, so save/restore reconstructs
// the exact store state.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/notify"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/vfs"
	"github.com/hackingproject/hackingos/pkg/wallet"
)

// Item is one purchasable catalog entry. AppID is the install target; an item
// without one cannot be purchased.
type Item struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"displayName"`
	Description string `yaml:"description"`
	Price       int    `yaml:"price"`
	AppID       string `yaml:"appId"`
}

// InstallerPackage is the JSON content of a .installer file in the VFS.
type InstallerPackage struct {
	AppID       string `json:"appId"`
	DisplayName string `json:"displayName"`
	Version     int    `json:"version"`
	PricePaid   int    `json:"pricePaid"`
	CreatedAt   string `json:"createdAt"`
}

// InstallerSuffix is the filename suffix all installer files carry.
const InstallerSuffix = ".installer"

// PurchaseCompletedEvent is published after a successful purchase.
type PurchaseCompletedEvent struct {
	ItemID string
	AppID  string
	Price  int
}

// AppInstalledEvent is published after a successful install.
type AppInstalledEvent struct {
	AppID string
}

// Service handles purchases.
type Service struct {
	bus      *event.Bus
	log      *zap.Logger
	wallet   *wallet.Service
	fs       *vfs.FS
	data     *save.GameData
	notifier *notify.Service
}

func NewService(bus *event.Bus, log *zap.Logger, w *wallet.Service, fs *vfs.FS, data *save.GameData, notifier *notify.Service) *Service {
	if bus == nil {
		panic("store: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{bus: bus, log: log, wallet: w, fs: fs, data: data, notifier: notifier}
}

// IsOwned reports whether appID has been purchased.
func (s *Service) IsOwned(appID string) bool { return s.data.Owns(appID) }

// CanPurchase reports whether item is buyable right now: it must have an
// install target, not already be owned, and the wallet must cover the price.
func (s *Service) CanPurchase(item Item) bool {
	if item.AppID == "" {
		return false
	}
	if s.IsOwned(item.AppID) {
		return false
	}
	price := item.Price
	if price < 0 {
		price = 0
	}
	return s.wallet.Credits() >= price
}

// Purchase buys item: debits the wallet, writes an installer file into the
// downloads directory, and records ownership. Returns false with no state
// change when the item is already owned or funds are insufficient.
func (s *Service) Purchase(item Item) bool {
	if item.AppID == "" || s.IsOwned(item.AppID) {
		return false
	}
	if !s.wallet.TrySpendCredits(item.Price, "store purchase: "+item.ID) {
		return false
	}

	pkg := InstallerPackage{
		AppID:       item.AppID,
		DisplayName: item.DisplayName,
		Version:     1,
		PricePaid:   item.Price,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	content, err := json.Marshal(pkg)
	if err != nil {
		// InstallerPackage is plain data; this cannot fail in practice.
		s.log.Error("encoding installer package", zap.Error(err))
		return false
	}
	name := s.installerFileName(item.AppID)
	if dir, ok := s.fs.Resolve(vfs.DownloadsPath).(*vfs.Directory); ok {
		dir.AddFile(name, string(content))
	} else {
		s.log.Warn("downloads directory missing, installer not written",
			zap.String("path", vfs.DownloadsPath))
	}

	s.data.OwnedAppIDs = append(s.data.OwnedAppIDs, item.AppID)

	s.log.Info("purchase completed",
		zap.String("item", item.ID),
		zap.String("app", item.AppID),
		zap.Int("price", item.Price))
	event.Publish(s.bus, PurchaseCompletedEvent{ItemID: item.ID, AppID: item.AppID, Price: item.Price})
	if s.notifier != nil {
		s.notifier.Success(fmt.Sprintf("Purchased %s. Installer saved to downloads.", item.DisplayName))
	}
	return true
}

// installerFileName picks appId.installer, or the first appId_N.installer
// that does not collide with an existing download.
func (s *Service) installerFileName(appID string) string {
	dir, ok := s.fs.Resolve(vfs.DownloadsPath).(*vfs.Directory)
	if !ok {
		return appID + InstallerSuffix
	}
	name := appID + InstallerSuffix
	for n := 1; dir.Child(name) != nil; n++ {
		name = fmt.Sprintf("%s_%d%s", appID, n, InstallerSuffix)
	}
	return name
}

// InstallService turns owned apps into installed ones.
type InstallService struct {
	bus      *event.Bus
	log      *zap.Logger
	data     *save.GameData
	notifier *notify.Service
}

func NewInstallService(bus *event.Bus, log *zap.Logger, data *save.GameData, notifier *notify.Service) *InstallService {
	if bus == nil {
		panic("store: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &InstallService{bus: bus, log: log, data: data, notifier: notifier}
}

// IsInstalled reports whether appID has been installed.
func (s *InstallService) IsInstalled(appID string) bool { return s.data.Installed(appID) }

// Install marks an owned app as installed. Returns false if appID is blank,
// not owned, or already installed; repeated calls are safe no-ops.
func (s *InstallService) Install(appID string) bool {
	if appID == "" {
		return false
	}
	if s.data.Installed(appID) || !s.data.Owns(appID) {
		return false
	}
	s.data.InstalledAppIDs = append(s.data.InstalledAppIDs, appID)
	s.log.Info("app installed", zap.String("app", appID))
	event.Publish(s.bus, AppInstalledEvent{AppID: appID})
	if s.notifier != nil {
		s.notifier.Success(fmt.Sprintf("Installed %s.", appID))
	}
	return true
}

// ParseInstaller decodes the content of a .installer file.
func ParseInstaller(content string) (InstallerPackage, error) {
	var pkg InstallerPackage
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return InstallerPackage{}, fmt.Errorf("invalid installer: %w", err)
	}
	if pkg.AppID == "" {
		return InstallerPackage{}, fmt.Errorf("invalid installer: missing appId")
	}
	return pkg, nil
}
