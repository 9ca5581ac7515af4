package event

// Event kinds, verbatim from spec.md §4.E. Kinds marked vetoable short-
// circuit dispatch on the first listener that cancels (spec.md §5).
const (
	KindServerInit     Kind = "server_init"
	KindServerShutdown Kind = "server_shutdown"
	KindServerFrame    Kind = "server_frame"
	KindPluginCommand  Kind = "plugin_command" // vetoable

	KindIncomingConnection Kind = "incoming_connection" // vetoable
	KindScriptData         Kind = "script_data"

	KindPlayerConnect           Kind = "player_connect"
	KindPlayerDisconnect        Kind = "player_disconnect"
	KindPlayerRequestClass      Kind = "player_request_class" // vetoable
	KindPlayerRequestSpawn      Kind = "player_request_spawn" // vetoable
	KindPlayerSpawn             Kind = "player_spawn"
	KindPlayerDeath             Kind = "player_death"
	KindPlayerUpdate            Kind = "player_update"
	KindPlayerRequestEnterVeh   Kind = "player_request_enter_vehicle" // vetoable
	KindPlayerEnterVehicle      Kind = "player_enter_vehicle"
	KindPlayerExitVehicle       Kind = "player_exit_vehicle"
	KindPlayerNameChange        Kind = "player_name_change"
	KindPlayerWorldChange       Kind = "player_world_change"
	KindPlayerSkinChange        Kind = "player_skin_change"
	KindPlayerStateChange       Kind = "player_state_change"
	KindPlayerActionChange      Kind = "player_action_change"
	KindPlayerOnFireChange      Kind = "player_on_fire_change"
	KindPlayerCrouchChange      Kind = "player_crouch_change"
	KindPlayerGameKeys          Kind = "player_game_keys"
	KindPlayerTypingBegin       Kind = "player_typing_begin"
	KindPlayerTypingEnd         Kind = "player_typing_end"
	KindPlayerAwayChange        Kind = "player_away_change"
	KindPlayerMessage           Kind = "player_message" // vetoable
	KindPlayerCommand           Kind = "player_command" // vetoable
	KindPlayerPrivateMessage    Kind = "player_private_message" // vetoable
	KindPlayerKeyBindDown       Kind = "player_key_bind_down"
	KindPlayerKeyBindUp         Kind = "player_key_bind_up"
	KindPlayerSpectate          Kind = "player_spectate"
	KindPlayerCrashReport       Kind = "player_crash_report"

	KindVehicleUpdate        Kind = "vehicle_update"
	KindVehicleExplode       Kind = "vehicle_explode"
	KindVehicleRespawn       Kind = "vehicle_respawn"
	KindVehiclePartStatus    Kind = "vehicle_part_status"
	KindVehicleTyreStatus    Kind = "vehicle_tyre_status"
	KindVehicleDamage        Kind = "vehicle_damage"
	KindVehicleRadio         Kind = "vehicle_radio"
	KindVehicleHandlingRule  Kind = "vehicle_handling_rule"

	KindObjectShot    Kind = "object_shot"
	KindObjectTouched Kind = "object_touched"

	KindPickupPickAttempt Kind = "pickup_pick_attempt" // vetoable
	KindPickupPicked      Kind = "pickup_picked"
	KindPickupRespawn     Kind = "pickup_respawn"

	KindCheckpointEnter Kind = "checkpoint_enter"
	KindCheckpointExit  Kind = "checkpoint_exit"

	KindPoolChangeCreate Kind = "pool_change_create"
	KindPoolChangeDelete Kind = "pool_change_delete"

	KindPerformanceReport Kind = "performance_report"

	// Tracking-engine diff events (spec.md §4.F).
	KindPositionChange Kind = "position_change"
	KindHeadingChange  Kind = "heading_change"
	KindHealthChange   Kind = "health_change"
	KindArmourChange   Kind = "armour_change"
	KindWeaponChange   Kind = "weapon_change"
	KindEnterArea      Kind = "enter_area"
	KindLeaveArea      Kind = "leave_area"
)

// Vetoable is the set of event kinds that support cancellation, per
// spec.md §5: "incoming connection, request-class, request-spawn,
// request-enter-vehicle, pick-attempt, message, command, private-message,
// plugin-command".
var Vetoable = map[Kind]bool{
	KindPluginCommand:         true,
	KindIncomingConnection:    true,
	KindPlayerRequestClass:    true,
	KindPlayerRequestSpawn:    true,
	KindPlayerRequestEnterVeh: true,
	KindPickupPickAttempt:     true,
	KindPlayerMessage:         true,
	KindPlayerCommand:         true,
	KindPlayerPrivateMessage:  true,
}

// NewEvent constructs an Event for kind, setting Cancelable automatically
// from the Vetoable table.
func NewEvent(kind Kind, detail any) *Event {
	return &Event{Kind: kind, Cancelable: Vetoable[kind], Detail: detail}
}
