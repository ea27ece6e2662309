package tidal

import (
	"math"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
)

// FindSlackWindow reports whether t falls inside the slack window
// around the nearest tide extreme, using the estimator's slack
// half-width. MinutesToSlack is signed: positive means the slack is
// still ahead, negative means it has passed.
func (e *Estimator) FindSlackWindow(t time.Time, high, low *models.TideExtreme) models.SlackWindow {
	nearest := nearestExtreme(t, high, low)
	if nearest == nil {
		return models.SlackWindow{}
	}

	delta := nearest.Time.Sub(t)
	minutes := int(math.Round(delta.Minutes()))

	return models.SlackWindow{
		Known:          true,
		IsSlackNow:     absDuration(delta) <= e.slackHalfWidth,
		MinutesToSlack: minutes,
		SlackKind:      nearest.Kind,
	}
}
