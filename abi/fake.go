package abi

import "github.com/sqmodcore/host/mathutil"

// Fake is a hand-written in-memory HostFuncs implementation for tests,
// matching the teacher's preference for explicit fakes over generated
// mocks (see eventloop's and logiface's own test suites).
type Fake struct {
	Now         int64
	Settings    map[string]string
	Players     map[int32]*FakePlayer
	nextVehicle int32
	nextPickup  int32
	nextCheck   int32
	nextObject  int32
	Messages    []FakeMessage
}

// FakePlayer is the subset of authoritative player state the fake tracks.
type FakePlayer struct {
	Name    string
	Pos     mathutil.Vector3
	Heading float64
	Health  float64
	Armour  float64
	Weapon  int32
}

// FakeMessage records a SendClientMessage call for assertions.
type FakeMessage struct {
	Handle  int32
	Color   mathutil.Color4
	Message string
}

// NewFake returns a Fake with no players and every counter zeroed.
func NewFake() *Fake {
	return &Fake{Settings: map[string]string{}, Players: map[int32]*FakePlayer{}}
}

// AddPlayer registers a connected player at the given handle.
func (f *Fake) AddPlayer(handle int32, name string) {
	f.Players[handle] = &FakePlayer{Name: name}
}

func (f *Fake) player(handle int32) (*FakePlayer, error) {
	p, ok := f.Players[handle]
	if !ok {
		return nil, Wrap(ErrNoSuchEntity, "player", handle, "")
	}
	return p, nil
}

func (f *Fake) LogMessage(format string, args ...any) {}

func (f *Fake) GetTime() int64 { return f.Now }

func (f *Fake) GetSetting(key string) (string, error) {
	v, ok := f.Settings[key]
	if !ok {
		return "", Wrap(ErrNoSuchEntity, "setting", 0, "GetSetting")
	}
	return v, nil
}

func (f *Fake) GetPlayerPosition(handle int32) (mathutil.Vector3, error) {
	p, err := f.player(handle)
	if err != nil {
		return mathutil.Vector3{}, err
	}
	return p.Pos, nil
}

func (f *Fake) SetPlayerPosition(handle int32, pos mathutil.Vector3) error {
	p, err := f.player(handle)
	if err != nil {
		return err
	}
	p.Pos = pos
	return nil
}

func (f *Fake) GetPlayerHeading(handle int32) (float64, error) {
	p, err := f.player(handle)
	if err != nil {
		return 0, err
	}
	return p.Heading, nil
}

func (f *Fake) SetPlayerHeading(handle int32, heading float64) error {
	p, err := f.player(handle)
	if err != nil {
		return err
	}
	p.Heading = heading
	return nil
}

func (f *Fake) GetPlayerHealth(handle int32) (float64, error) {
	p, err := f.player(handle)
	if err != nil {
		return 0, err
	}
	return p.Health, nil
}

func (f *Fake) SetPlayerHealth(handle int32, health float64) error {
	p, err := f.player(handle)
	if err != nil {
		return err
	}
	p.Health = health
	return nil
}

func (f *Fake) GetPlayerArmour(handle int32) (float64, error) {
	p, err := f.player(handle)
	if err != nil {
		return 0, err
	}
	return p.Armour, nil
}

func (f *Fake) SetPlayerArmour(handle int32, armour float64) error {
	p, err := f.player(handle)
	if err != nil {
		return err
	}
	p.Armour = armour
	return nil
}

func (f *Fake) GetPlayerWeapon(handle int32) (int32, error) {
	p, err := f.player(handle)
	if err != nil {
		return 0, err
	}
	return p.Weapon, nil
}

func (f *Fake) SetPlayerWeapon(handle int32, weapon int32) error {
	p, err := f.player(handle)
	if err != nil {
		return err
	}
	p.Weapon = weapon
	return nil
}

func (f *Fake) GetPlayerName(handle int32) (string, error) {
	p, err := f.player(handle)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func (f *Fake) SetPlayerName(handle int32, name string) error {
	p, err := f.player(handle)
	if err != nil {
		return err
	}
	if name == "" {
		return Wrap(ErrInvalidName, "player", handle, "SetPlayerName")
	}
	p.Name = name
	return nil
}

func (f *Fake) KickPlayer(handle int32) error {
	if _, err := f.player(handle); err != nil {
		return err
	}
	delete(f.Players, handle)
	return nil
}

func (f *Fake) BanPlayer(handle int32) error {
	return f.KickPlayer(handle)
}

func (f *Fake) SendClientMessage(handle int32, color mathutil.Color4, message string) error {
	if _, err := f.player(handle); err != nil {
		return err
	}
	if len(message) > 4096 {
		return Wrap(ErrTooLargeInput, "player", handle, "SendClientMessage")
	}
	f.Messages = append(f.Messages, FakeMessage{Handle: handle, Color: color, Message: message})
	return nil
}

func (f *Fake) CreateVehicle(model int32, pos mathutil.Vector3, heading float64) (int32, error) {
	f.nextVehicle++
	return f.nextVehicle - 1, nil
}

func (f *Fake) DeleteVehicle(handle int32) error { return nil }

func (f *Fake) GetVehiclePosition(handle int32) (mathutil.Vector3, error) {
	return mathutil.Vector3{}, nil
}

func (f *Fake) SetVehiclePosition(handle int32, pos mathutil.Vector3) error { return nil }

func (f *Fake) CreatePickup(model int32, pos mathutil.Vector3) (int32, error) {
	f.nextPickup++
	return f.nextPickup - 1, nil
}

func (f *Fake) DeletePickup(handle int32) error { return nil }

func (f *Fake) CreateCheckpoint(pos mathutil.Vector3, radius float64) (int32, error) {
	f.nextCheck++
	return f.nextCheck - 1, nil
}

func (f *Fake) DeleteCheckpoint(handle int32) error { return nil }

func (f *Fake) CreateObject(model int32, pos mathutil.Vector3) (int32, error) {
	f.nextObject++
	return f.nextObject - 1, nil
}

func (f *Fake) DeleteObject(handle int32) error { return nil }

var _ HostFuncs = (*Fake)(nil)
