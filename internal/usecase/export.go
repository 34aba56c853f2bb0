package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/partscout/backend/internal/domain"
)

// WriteCSV writes the merged listings as comma-separated text with a
// name,price,rating,link header, the downloadable table the delivery layer
// serves.
func WriteCSV(w io.Writer, listings []domain.Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "price", "rating", "link"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, l := range listings {
		record := []string{
			l.Name,
			strconv.FormatFloat(l.Price, 'f', -1, 64),
			strconv.FormatFloat(l.Rating, 'f', -1, 64),
			l.Link,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
