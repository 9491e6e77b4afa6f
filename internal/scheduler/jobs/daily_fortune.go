package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/KarinaMa20040822/starwish/backend/internal/advisor"
	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
	"github.com/KarinaMa20040822/starwish/backend/internal/horoscope"
	"github.com/KarinaMa20040822/starwish/backend/internal/store"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// defaultMatchRate is stored until a per-user score is computed on read.
const defaultMatchRate = 50

// DailyFortuneJob sweeps all 12 signs each morning: scrape the horoscope,
// generate the AI suggestion and persist the snapshot.
type DailyFortuneJob struct {
	horoscope *horoscope.Service
	advisor   *advisor.Advisor
	fortunes  *store.FortuneRepository
	logger    *logger.Logger
}

// NewDailyFortuneJob creates the daily fortune job.
func NewDailyFortuneJob(
	svc *horoscope.Service,
	adv *advisor.Advisor,
	repo *store.FortuneRepository,
	log *logger.Logger,
) *DailyFortuneJob {
	return &DailyFortuneJob{horoscope: svc, advisor: adv, fortunes: repo, logger: log}
}

// Name returns the job name.
func (j *DailyFortuneJob) Name() string {
	return "daily_fortune"
}

// Schedule runs every day at 06:00, after click108 publishes the new day.
func (j *DailyFortuneJob) Schedule() string {
	return "0 0 6 * * *"
}

// Run processes the 12 signs. A failing sign is logged and skipped so one
// bad scrape does not lose the rest of the sweep; the job only errors when
// every sign failed.
func (j *DailyFortuneJob) Run(ctx context.Context) error {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today := fortune.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}

	saved := 0
	for astroID := 0; astroID < 12; astroID++ {
		sign := fortune.Sign(astroID)

		daily, err := j.horoscope.GetDaily(ctx, now, sign)
		if err != nil {
			j.logger.WithError(err).WithField("sign", sign.Name()).Error("Horoscope fetch failed, skipping sign")
			continue
		}

		// suggestion failures degrade to an empty field, same as the
		// snapshot simply not having advice yet
		suggestions := ""
		if text, err := j.advisor.Advice(ctx, daily.Overall, daily.Love, daily.Career, daily.Wealth, "良好"); err != nil {
			j.logger.WithError(err).WithField("sign", sign.Name()).Warn("Advice generation failed")
		} else {
			suggestions = text
		}

		rec := &contracts.FortuneRecord{
			AstroID:       astroID,
			Date:          day,
			LuckyColor:    daily.LuckyColor,
			AvoidColor:    string(fortune.AvoidColor(daily.LuckyColor, today, "")),
			BusinessHours: daily.LuckyTime,
			Love:          daily.Love,
			Wealth:        daily.Wealth,
			Career:        daily.Career,
			Suggestions:   suggestions,
			MatchRate:     defaultMatchRate,
		}

		if err := j.fortunes.Save(ctx, rec); err != nil {
			j.logger.WithError(err).WithField("sign", sign.Name()).Error("Snapshot save failed")
			continue
		}

		saved++
		j.logger.WithFields(map[string]interface{}{
			"sign": sign.Name(),
			"date": day.Format("2006-01-02"),
		}).Info("Daily fortune saved")
	}

	if saved == 0 {
		return fmt.Errorf("all 12 signs failed")
	}

	j.logger.WithField("saved", saved).Info("Daily fortune sweep finished")
	return nil
}
