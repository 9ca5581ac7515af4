package abi

import "github.com/sqmodcore/host/mathutil"

// PlayerUpdateKind mirrors vcmpPlayerUpdate: the class of per-frame change
// that produced an OnPlayerUpdate callback.
type PlayerUpdateKind int

const (
	PlayerUpdateNone PlayerUpdateKind = iota
	PlayerUpdatePosition
	PlayerUpdateHeading
	PlayerUpdateHealth
	PlayerUpdateArmour
	PlayerUpdateWeapon
)

// DisconnectReason mirrors vcmpDisconnectReason.
type DisconnectReason int

const (
	DisconnectTimeout DisconnectReason = iota
	DisconnectQuit
	DisconnectKicked
	DisconnectCrashed
)

// BodyPart mirrors vcmpBodyPart, used on OnPlayerDeath.
type BodyPart int

// HostFuncs is the subset of the host's ~250-function inbound vtable this
// core depends on. Every call either returns a value or, per §4.A, can fail
// with an EntityError read from the host's last-error slot immediately
// after the call — hence every fallible method here returns (T, error)
// directly rather than forcing callers to poll a side channel, while still
// matching the host's actual "value + last-error" ABI one level down in
// the real adapter implementation (not shown: that implementation lives
// outside this module, against the host's actual C exports).
type HostFuncs interface {
	// Plugin system.
	LogMessage(format string, args ...any)
	GetTime() int64
	GetSetting(key string) (string, error)

	// Players.
	GetPlayerPosition(handle int32) (mathutil.Vector3, error)
	SetPlayerPosition(handle int32, pos mathutil.Vector3) error
	GetPlayerHeading(handle int32) (float64, error)
	SetPlayerHeading(handle int32, heading float64) error
	GetPlayerHealth(handle int32) (float64, error)
	SetPlayerHealth(handle int32, health float64) error
	GetPlayerArmour(handle int32) (float64, error)
	SetPlayerArmour(handle int32, armour float64) error
	GetPlayerWeapon(handle int32) (int32, error)
	SetPlayerWeapon(handle int32, weapon int32) error
	GetPlayerName(handle int32) (string, error)
	SetPlayerName(handle int32, name string) error
	KickPlayer(handle int32) error
	BanPlayer(handle int32) error
	SendClientMessage(handle int32, color mathutil.Color4, message string) error

	// Vehicles.
	CreateVehicle(model int32, pos mathutil.Vector3, heading float64) (int32, error)
	DeleteVehicle(handle int32) error
	GetVehiclePosition(handle int32) (mathutil.Vector3, error)
	SetVehiclePosition(handle int32, pos mathutil.Vector3) error

	// Pickups.
	CreatePickup(model int32, pos mathutil.Vector3) (int32, error)
	DeletePickup(handle int32) error

	// Checkpoints.
	CreateCheckpoint(pos mathutil.Vector3, radius float64) (int32, error)
	DeleteCheckpoint(handle int32) error

	// Objects.
	CreateObject(model int32, pos mathutil.Vector3) (int32, error)
	DeleteObject(handle int32) error
}
