package runtime

import (
	"time"

	"github.com/sqmodcore/host/corelog"
)

// config holds the resolved configuration for New, the same
// unexported-struct-plus-functional-options shape as the teacher's
// eventloop.loopOptions (SPEC_FULL.md §4.K).
type config struct {
	playerCapacity     int
	vehicleCapacity    int
	pickupCapacity     int
	objectCapacity     int
	checkpointCapacity int
	blipCapacity       int
	gridReserve        int

	logger *corelog.Logger

	diagnosticRates map[time.Duration]int
	floodRates      map[time.Duration]int
}

// Option configures a Runtime instance.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(cfg *config) { f(cfg) }

// WithPlayerCapacity overrides the player pool's fixed capacity (default
// 100, matching the real server's limit).
func WithPlayerCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.playerCapacity = n })
}

// WithVehicleCapacity overrides the vehicle pool's fixed capacity.
func WithVehicleCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.vehicleCapacity = n })
}

// WithPickupCapacity overrides the pickup pool's fixed capacity.
func WithPickupCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.pickupCapacity = n })
}

// WithObjectCapacity overrides the object pool's fixed capacity.
func WithObjectCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.objectCapacity = n })
}

// WithCheckpointCapacity overrides the checkpoint pool's fixed capacity.
func WithCheckpointCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.checkpointCapacity = n })
}

// WithBlipCapacity overrides the blip pool's fixed capacity.
func WithBlipCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.blipCapacity = n })
}

// WithGridReserve sets the per-cell area-slice pre-allocation size for the
// spatial grid (area.NewManager's reserve parameter).
func WithGridReserve(n int) Option {
	return optionFunc(func(cfg *config) { cfg.gridReserve = n })
}

// WithLogger installs the structured logger used by every package in this
// module (replacing corelog's process-wide default), per SPEC_FULL.md
// §4.J.
func WithLogger(l *corelog.Logger) Option {
	return optionFunc(func(cfg *config) { cfg.logger = l })
}

// WithRateLimiter installs the sliding-window rates used for diagnostic log
// throttling and the vetoable event flood guard (SPEC_FULL.md §4.L).
// Passing a nil map for either leaves that limiter unconfigured (unlimited).
func WithRateLimiter(diagnostic, flood map[time.Duration]int) Option {
	return optionFunc(func(cfg *config) {
		cfg.diagnosticRates = diagnostic
		cfg.floodRates = flood
	})
}

// defaultFloodRates is a generous default so ordinary play is never
// throttled: 20 chat/command events per second, 200 per minute.
func defaultFloodRates() map[time.Duration]int {
	return map[time.Duration]int{
		time.Second: 20,
		time.Minute: 200,
	}
}

// defaultDiagnosticRates bounds repeated EntityError log spam to 5 per
// (pool, errorKind) per second.
func defaultDiagnosticRates() map[time.Duration]int {
	return map[time.Duration]int{
		time.Second: 5,
	}
}

// resolveOptions applies opts over a default configuration, the same
// pattern as the teacher's resolveLoopOptions.
func resolveOptions(opts []Option) *config {
	cfg := &config{
		playerCapacity:     100,
		vehicleCapacity:    50,
		pickupCapacity:     64,
		objectCapacity:     256,
		checkpointCapacity: 64,
		blipCapacity:       64,
		gridReserve:        4,
		diagnosticRates:    defaultDiagnosticRates(),
		floodRates:         defaultFloodRates(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
