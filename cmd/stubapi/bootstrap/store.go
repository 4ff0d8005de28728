package bootstrap

import (
	"shadow-events-cli/internal/pkg/clock"
	"shadow-events-cli/internal/stubapi/store"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewSeededStore,
	),
)

func NewSeededStore(clk clock.Clock) (*store.Store, error) {
	st := store.New(clk)
	if err := st.Seed(); err != nil {
		return nil, err
	}
	return st, nil
}
