package main

import (
	"os"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/joho/godotenv"
	"github.com/oomph-ac/pinball/physics"
	"github.com/oomph-ac/pinball/settings"
	"github.com/oomph-ac/pinball/table"
	"github.com/sirupsen/logrus"
)

// The following program loads a table and runs it without rendering, logging the hit events it produces.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if lvl, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	defer sentry.Recover()

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	path := getEnv("TABLE_PATH", "table.toml")
	if err := settings.SaveDefault(path); err == nil {
		log.Infof("wrote default table to %s", path)
	}
	s, err := settings.Load(path)
	if err != nil {
		log.Fatalf("unable to load table: %v", err)
	}
	if workers := getEnvInt("WORKERS", 0); workers > 0 {
		s.Table.Workers = workers
	}

	t, err := table.New(s, log)
	if err != nil {
		log.Fatalf("unable to build table: %v", err)
	}
	defer t.Close()

	var pace time.Duration
	if os.Getenv("REALTIME") != "" {
		pace = time.Duration(float64(t.TimeStep()) * float64(time.Millisecond))
	}
	run(t, log, getEnvInt("TICKS", 3600), pace)
}

// run ticks the table, one tick per pace if pace is non-zero, and logs every hit event.
func run(t *table.Table, log *logrus.Logger, ticks int, pace time.Duration) {
	var ticker *time.Ticker
	if pace > 0 {
		ticker = time.NewTicker(pace)
		defer ticker.Stop()
	}

	events := make([]physics.HitEvent, 0, physics.DefaultEventCapacity)
	for i := range ticks {
		if ticker != nil {
			<-ticker.C
		}
		t.Tick()

		events = t.State().DrainEvents(events[:0])
		for _, ev := range events {
			log.WithFields(logrus.Fields{
				"item":  ev.ItemID,
				"kind":  ev.Kind.String(),
				"ball":  ev.BallID,
				"speed": ev.Speed,
			}).Debugf("hit at %dms", ev.TimeMsec)
		}
		if i%600 == 599 {
			p := t.Profile()
			log.WithFields(logrus.Fields{
				"mean_ms":   p.MeanTickMs,
				"median_ms": p.MedianTickMs,
				"max_ms":    p.MaxTickMs,
				"sub_steps": p.MeanSubSteps,
				"slow":      p.SlowTicks,
			}).Infof("%dms simulated", t.TimeMsec())
			for _, b := range t.Balls() {
				log.Infof("ball %d at %.1f, %.1f, %.1f (frozen: %v)", b.ID, b.Pos.X(), b.Pos.Y(), b.Pos.Z(), b.IsFrozen)
			}
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithError(err).Warnf("invalid %s, using %d", key, defaultValue)
		return defaultValue
	}
	return n
}
