package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dayFormat = "2006-01-02"

type ApplyPeakRequest struct {
	TourID    uuid.UUID       `json:"tour_id" binding:"required"`
	StartDate string          `json:"start_date" binding:"required"`
	EndDate   string          `json:"end_date" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

func (r *ApplyPeakRequest) Range(loc *time.Location) (from, to time.Time, err error) {
	return parseDayRange(r.StartDate, r.EndDate, loc)
}

type RemovePeakRequest struct {
	TourID    uuid.UUID `json:"tour_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
}

func (r *RemovePeakRequest) Range(loc *time.Location) (from, to time.Time, err error) {
	return parseDayRange(r.StartDate, r.EndDate, loc)
}

func parseDayRange(start, end string, loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(dayFormat, start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.ParseInLocation(dayFormat, end, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
