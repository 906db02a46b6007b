package export

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/internal/utils/storage"
	"Food-Waste-Tracker/pkg/expiry"
	"Food-Waste-Tracker/pkg/food"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const contentTypeCSV = "text/csv"

var csvHeader = []string{"id", "name", "category", "quantity", "location", "expiry_date", "days_left", "status"}

type (
	ExportService interface {
		ExportSnapshot(ctx context.Context, today time.Time) (domain.ExportResponse, error)
	}

	exportService struct {
		foodService food.FoodService
		s3          storage.AwsS3
	}
)

// NewExportService accepts a nil s3, in which case every export fails with
// domain.ErrExportDisabled.
func NewExportService(foodService food.FoodService, s3 storage.AwsS3) ExportService {
	return &exportService{
		foodService: foodService,
		s3:          s3,
	}
}

func (s *exportService) ExportSnapshot(ctx context.Context, today time.Time) (domain.ExportResponse, error) {
	if s.s3 == nil {
		return domain.ExportResponse{}, domain.ErrExportDisabled
	}

	entries, err := s.foodService.GetDisplayEntries(ctx, today)
	if err != nil {
		return domain.ExportResponse{}, err
	}

	body, err := EncodeCSV(entries)
	if err != nil {
		return domain.ExportResponse{}, err
	}

	objectKey := fmt.Sprintf("exports/food-items-%s-%s.csv", today.Format(domain.DateLayout), uuid.NewString())
	objectKey, err = s.s3.UploadFile(ctx, objectKey, bytes.NewReader(body), contentTypeCSV)
	if err != nil {
		return domain.ExportResponse{}, err
	}

	return domain.ExportResponse{
		ObjectKey: objectKey,
		URL:       s.s3.GetPublicLinkKey(objectKey),
		Items:     len(entries),
	}, nil
}

// EncodeCSV writes entries in display order. Unknown days-left is an empty cell.
func EncodeCSV(entries []expiry.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range entries {
		daysLeft := ""
		if entry.DaysLeft.Known {
			daysLeft = strconv.Itoa(entry.DaysLeft.Days)
		}
		record := []string{
			strconv.FormatInt(entry.Item.ID, 10),
			entry.Item.Name,
			entry.Item.Category,
			entry.Item.Quantity,
			entry.Item.Location,
			entry.Item.ExpiryDate,
			daysLeft,
			string(entry.Classification),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record %d: %w", entry.Item.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
