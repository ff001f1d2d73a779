// Command fitfusion refreshes the dashboard against the configured API
// and prints it together with the locally stored workout summary.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/fitfusion/pkg/config"
	"github.com/limbo/fitfusion/pkg/fitfusion"
	"github.com/limbo/fitfusion/pkg/metrics"
	"github.com/limbo/fitfusion/pkg/store"
)

type report struct {
	Dashboard     store.DashboardView    `json:"dashboard"`
	Workouts      metrics.WorkoutSummary `json:"workouts"`
	PersonalBests map[string]int         `json:"personalBests"`
	Theme         string                 `json:"theme"`
}

func main() {
	cfg := config.New()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app, err := fitfusion.Open(ctx, cfg, slog.Default())
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	view, err := app.Dashboard.Refresh(ctx)
	if err != nil {
		slog.Warn("dashboard refresh error, showing cached data", slog.String("error", err.Error()))
	}
	bests := make(map[string]int)
	for category, best := range app.Workouts.PersonalBests() {
		bests[string(category)] = best
	}
	out := report{
		Dashboard:     view,
		Workouts:      app.Workouts.WeeklySummary(),
		PersonalBests: bests,
		Theme:         string(app.Theme(ctx)),
	}
	enc := sonic.ConfigStd.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(out); err != nil {
		slog.Error("writing report error", slog.String("error", err.Error()))
		app.Close()
		os.Exit(1)
	}
}
