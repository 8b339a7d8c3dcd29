// Package mission runs the objective state machine. Objectives complete in
// response to terminal and file-manager events, finished missions grant a
// wallet reward exactly once, and the catalog auto-advances to the next
// unfinished mission.
package mission

import (
	"strings"

	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/terminal"
	"github.com/hackingproject/hackingos/pkg/vfs"
	"github.com/hackingproject/hackingos/pkg/wallet"
)

// ObjectiveType selects which event stream an objective listens to.
type ObjectiveType string

const (
	ObjectiveTerminalCommand ObjectiveType = "terminalCommand"
	ObjectiveFileOpened      ObjectiveType = "fileOpened"
)

// Objective is one completable condition. An empty Command or Path acts as a
// wildcard for that field.
type Objective struct {
	Type        ObjectiveType `yaml:"type"`
	Description string        `yaml:"description"`
	Command     string        `yaml:"command"`
	Path        string        `yaml:"path"`
}

// Definition is immutable catalog data for one mission.
type Definition struct {
	ID            string      `yaml:"id"`
	Title         string      `yaml:"title"`
	Description   string      `yaml:"description"`
	RewardCredits int         `yaml:"rewardCredits"`
	Objectives    []Objective `yaml:"objectives"`
}

// Key returns the identity used for the completed and rewarded sets: the
// explicit ID, or the title when the ID is blank.
func (d *Definition) Key() string {
	if d.ID != "" {
		return d.ID
	}
	return d.Title
}

// StartedEvent is published when a mission becomes active.
type StartedEvent struct {
	Mission *Definition
}

// ObjectiveCompletedEvent is published once per objective completion.
type ObjectiveCompletedEvent struct {
	Mission *Definition
	Index   int
}

// CompletedEvent is published when every objective of the active mission is
// complete.
type CompletedEvent struct {
	Mission *Definition
}

// RewardGrantedEvent is published after the completion reward is credited.
type RewardGrantedEvent struct {
	Mission *Definition
	Credits int
}

// Service drives mission progression. All operations are defensive no-ops on
// a nil active mission or nil catalog.
type Service struct {
	bus     *event.Bus
	log     *zap.Logger
	wallet  *wallet.Service
	catalog []*Definition

	active        *Definition
	objectiveDone []bool
	completed     bool
	completedIDs  map[string]bool
	rewardedIDs   map[string]bool
}

// NewService wires the service to the bus. The catalog order defines the
// auto-advance order.
func NewService(bus *event.Bus, log *zap.Logger, w *wallet.Service, catalog []*Definition) *Service {
	if bus == nil {
		panic("mission: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		bus:          bus,
		log:          log,
		wallet:       w,
		catalog:      catalog,
		completedIDs: map[string]bool{},
		rewardedIDs:  map[string]bool{},
	}
	event.Subscribe(bus, s.onCommandExecuted)
	event.Subscribe(bus, s.onFileOpened)
	return s
}

// ActiveMission returns the mission in progress, or nil.
func (s *Service) ActiveMission() *Definition { return s.active }

// IsObjectiveCompleted reports the completion flag for objective index of the
// active mission; out-of-range indexes are false.
func (s *Service) IsObjectiveCompleted(index int) bool {
	return index >= 0 && index < len(s.objectiveDone) && s.objectiveDone[index]
}

// IsMissionCompleted reports whether the active mission has finished.
func (s *Service) IsMissionCompleted() bool { return s.completed }

// IsCompleted reports whether the mission identified by key has ever
// completed this session.
func (s *Service) IsCompleted(key string) bool { return s.completedIDs[key] }

// StartFirstAvailable activates the first catalog mission not yet completed.
func (s *Service) StartFirstAvailable() {
	for _, def := range s.catalog {
		if !s.completedIDs[def.Key()] {
			s.SetActiveMission(def)
			return
		}
	}
}

// SetActiveMission resets progression state for mission and publishes
// StartedEvent. A mission with zero objectives completes immediately.
func (s *Service) SetActiveMission(mission *Definition) {
	if mission == nil {
		return
	}
	s.active = mission
	s.objectiveDone = make([]bool, len(mission.Objectives))
	s.completed = false
	s.log.Info("mission started", zap.String("mission", mission.Key()))
	event.Publish(s.bus, StartedEvent{Mission: mission})
	s.checkCompletion()
}

func (s *Service) onCommandExecuted(evt terminal.CommandExecutedEvent) {
	s.matchObjectives(ObjectiveTerminalCommand, evt.Command, evt.ResolvedPath)
}

func (s *Service) onFileOpened(evt vfs.FileOpenedEvent) {
	s.matchObjectives(ObjectiveFileOpened, "", evt.FullPath)
}

// matchObjectives marks every incomplete objective of the given type whose
// command and path patterns match the event.
func (s *Service) matchObjectives(typ ObjectiveType, command, path string) {
	if s.active == nil || s.completed {
		return
	}
	for i, obj := range s.active.Objectives {
		if s.objectiveDone[i] || obj.Type != typ {
			continue
		}
		if typ == ObjectiveTerminalCommand && !matches(obj.Command, command) {
			continue
		}
		if !matches(obj.Path, path) {
			continue
		}
		s.objectiveDone[i] = true
		s.log.Debug("objective completed",
			zap.String("mission", s.active.Key()),
			zap.Int("index", i))
		event.Publish(s.bus, ObjectiveCompletedEvent{Mission: s.active, Index: i})
	}
	s.checkCompletion()
}

// matches applies the wildcard rule: an empty expected value matches
// anything, a non-empty expected value requires a case-insensitive match and
// never matches an absent actual value.
func matches(expected, actual string) bool {
	if expected == "" {
		return true
	}
	if actual == "" {
		return false
	}
	return strings.EqualFold(expected, actual)
}

func (s *Service) checkCompletion() {
	if s.active == nil || s.completed {
		return
	}
	for _, done := range s.objectiveDone {
		if !done {
			return
		}
	}

	s.completed = true
	key := s.active.Key()
	s.completedIDs[key] = true
	s.log.Info("mission completed", zap.String("mission", key))
	event.Publish(s.bus, CompletedEvent{Mission: s.active})

	if s.active.RewardCredits != 0 && !s.rewardedIDs[key] {
		s.rewardedIDs[key] = true
		if s.wallet != nil {
			s.wallet.AddCredits(s.active.RewardCredits, "mission reward: "+key)
		}
		event.Publish(s.bus, RewardGrantedEvent{Mission: s.active, Credits: s.active.RewardCredits})
	}

	s.advance()
}

// advance activates the next catalog mission after the current one that has
// not completed yet.
func (s *Service) advance() {
	if s.active == nil || len(s.catalog) == 0 {
		return
	}
	current := -1
	for i, def := range s.catalog {
		if def.Key() == s.active.Key() {
			current = i
			break
		}
	}
	for i := current + 1; i < len(s.catalog); i++ {
		if !s.completedIDs[s.catalog[i].Key()] {
			s.SetActiveMission(s.catalog[i])
			return
		}
	}
}
