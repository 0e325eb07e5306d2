package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

// columns is the fixed export order; every record carries the full set
var columns = []string{
	"seendate_dt", "sentiment_score", "sentiment_label", "title",
	"domain", "url", "url_mobile", "socialimage", "seendate",
	"language", "sourcecountry",
}

// WriteCSV writes the normalized records in the fixed column order
func WriteCSV(w io.Writer, records []models.NormalizedRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		seenAt := ""
		if rec.SeenAt != nil {
			seenAt = rec.SeenAt.Format(time.RFC3339)
		}

		row := []string{
			seenAt,
			strconv.FormatFloat(rec.SentimentScore, 'f', 4, 64),
			string(rec.SentimentLabel),
			rec.Title,
			rec.Domain,
			rec.URL,
			rec.URLMobile,
			rec.SocialImage,
			rec.SeenDate,
			rec.Language,
			rec.SourceCountry,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveTimestamped writes the records to dir with a run-timestamped name
// and returns the created path.
func SaveTimestamped(dir string, records []models.NormalizedRecord) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	name := fmt.Sprintf("gdelt_headlines_sentiment_%s.csv", time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return "", err
	}

	logger.Info("records exported",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)

	return path, nil
}
