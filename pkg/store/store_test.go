package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/vfs"
	"github.com/hackingproject/hackingos/pkg/wallet"
)

type storeFixture struct {
	bus     *event.Bus
	fs      *vfs.FS
	data    *save.GameData
	wallet  *wallet.Service
	store   *Service
	install *InstallService
}

func setupStore(t *testing.T, startingCredits int) *storeFixture {
	t.Helper()
	bus := event.NewBus()
	fs := vfs.DefaultTree()
	data := save.NewGameData()
	w := wallet.NewService(bus, nil, startingCredits)
	return &storeFixture{
		bus:     bus,
		fs:      fs,
		data:    data,
		wallet:  w,
		store:   NewService(bus, nil, w, fs, data, nil),
		install: NewInstallService(bus, nil, data, nil),
	}
}

var decryptor = Item{
	ID:          "store-decryptor",
	DisplayName: "Decryptor",
	Description: "Cracks weak ciphers.",
	Price:       25,
	AppID:       "decryptor",
}

func TestPurchaseThenInstallChain(t *testing.T) {
	f := setupStore(t, 50)

	var installs []AppInstalledEvent
	event.Subscribe(f.bus, func(evt AppInstalledEvent) {
		installs = append(installs, evt)
	})

	require.True(t, f.store.CanPurchase(decryptor))
	require.True(t, f.store.Purchase(decryptor))

	assert.Equal(t, 25, f.wallet.Credits())
	assert.True(t, f.store.IsOwned("decryptor"))

	// The installer file lands in downloads.
	node := f.fs.Resolve(vfs.DownloadsPath + "/decryptor" + InstallerSuffix)
	file, ok := node.(*vfs.File)
	require.True(t, ok, "expected installer file in downloads")
	pkg, err := ParseInstaller(file.Content())
	require.NoError(t, err)
	assert.Equal(t, "decryptor", pkg.AppID)
	assert.Equal(t, 25, pkg.PricePaid)

	assert.True(t, f.install.Install("decryptor"))
	assert.False(t, f.install.Install("decryptor"), "second install must be a no-op")
	assert.True(t, f.install.IsInstalled("decryptor"))
	require.Len(t, installs, 1)
	assert.Equal(t, "decryptor", installs[0].AppID)
}

func TestPurchasePublishesCompletion(t *testing.T) {
	f := setupStore(t, 100)

	var events []PurchaseCompletedEvent
	event.Subscribe(f.bus, func(evt PurchaseCompletedEvent) {
		events = append(events, evt)
	})

	require.True(t, f.store.Purchase(decryptor))
	require.Len(t, events, 1)
	assert.Equal(t, PurchaseCompletedEvent{ItemID: "store-decryptor", AppID: "decryptor", Price: 25}, events[0])
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	f := setupStore(t, 10)

	assert.False(t, f.store.CanPurchase(decryptor))
	assert.False(t, f.store.Purchase(decryptor))
	assert.Equal(t, 10, f.wallet.Credits())
	assert.False(t, f.store.IsOwned("decryptor"))
	assert.Empty(t, f.fs.ListChildren(vfs.DownloadsPath+"/nonexistent"))
}

func TestRepurchaseIsRejected(t *testing.T) {
	f := setupStore(t, 100)

	require.True(t, f.store.Purchase(decryptor))
	assert.False(t, f.store.CanPurchase(decryptor))
	assert.False(t, f.store.Purchase(decryptor))
	assert.Equal(t, 75, f.wallet.Credits(), "failed repurchase must not debit")
}

func TestItemWithoutAppIDIsNotPurchasable(t *testing.T) {
	f := setupStore(t, 100)

	broken := Item{ID: "broken", DisplayName: "Broken", Price: 5}
	assert.False(t, f.store.CanPurchase(broken))
	assert.False(t, f.store.Purchase(broken))
}

func TestInstallerFileNameAvoidsCollisions(t *testing.T) {
	f := setupStore(t, 100)

	dir := f.fs.Resolve(vfs.DownloadsPath).(*vfs.Directory)
	dir.AddFile("decryptor"+InstallerSuffix, "{}")
	dir.AddFile("decryptor_1"+InstallerSuffix, "{}")

	assert.Equal(t, "decryptor_2"+InstallerSuffix, f.store.installerFileName("decryptor"))
}

func TestInstallRequiresOwnership(t *testing.T) {
	f := setupStore(t, 100)

	assert.False(t, f.install.Install("decryptor"))
	assert.False(t, f.install.Install(""))
}

func TestParseInstallerRejectsBadContent(t *testing.T) {
	_, err := ParseInstaller("not json at all")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid installer"))

	_, err = ParseInstaller(`{"displayName":"x"}`)
	require.Error(t, err)
}
