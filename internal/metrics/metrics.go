// Package metrics provides lightweight in-process counters for API activity.
package metrics

import "sync/atomic"

// Recorder records API activity counters.
type Recorder interface {
	IncUserCreated()
	IncUserUpdated()
	IncUserDeleted()
	IncResourceCreated()
	IncResourceUpdated()
	IncResourceDeleted()
	IncRegister()
	IncLogin()
}

// Snapshotter exposes a point-in-time copy of the counters.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated     uint64
	UsersUpdated     uint64
	UsersDeleted     uint64
	ResourcesCreated uint64
	ResourcesUpdated uint64
	ResourcesDeleted uint64
	Registers        uint64
	Logins           uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated     atomic.Uint64
	usersUpdated     atomic.Uint64
	usersDeleted     atomic.Uint64
	resourcesCreated atomic.Uint64
	resourcesUpdated atomic.Uint64
	resourcesDeleted atomic.Uint64
	registers        atomic.Uint64
	logins           atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:     m.usersCreated.Load(),
		UsersUpdated:     m.usersUpdated.Load(),
		UsersDeleted:     m.usersDeleted.Load(),
		ResourcesCreated: m.resourcesCreated.Load(),
		ResourcesUpdated: m.resourcesUpdated.Load(),
		ResourcesDeleted: m.resourcesDeleted.Load(),
		Registers:        m.registers.Load(),
		Logins:           m.logins.Load(),
	}
}

func (m *InMemoryRecorder) IncUserCreated()     { m.usersCreated.Add(1) }
func (m *InMemoryRecorder) IncUserUpdated()     { m.usersUpdated.Add(1) }
func (m *InMemoryRecorder) IncUserDeleted()     { m.usersDeleted.Add(1) }
func (m *InMemoryRecorder) IncResourceCreated() { m.resourcesCreated.Add(1) }
func (m *InMemoryRecorder) IncResourceUpdated() { m.resourcesUpdated.Add(1) }
func (m *InMemoryRecorder) IncResourceDeleted() { m.resourcesDeleted.Add(1) }
func (m *InMemoryRecorder) IncRegister()        { m.registers.Add(1) }
func (m *InMemoryRecorder) IncLogin()           { m.logins.Add(1) }

// NoopRecorder discards all metrics.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards everything.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (NoopRecorder) IncUserCreated()     {}
func (NoopRecorder) IncUserUpdated()     {}
func (NoopRecorder) IncUserDeleted()     {}
func (NoopRecorder) IncResourceCreated() {}
func (NoopRecorder) IncResourceUpdated() {}
func (NoopRecorder) IncResourceDeleted() {}
func (NoopRecorder) IncRegister()        {}
func (NoopRecorder) IncLogin()           {}
