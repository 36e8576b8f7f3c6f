package pos

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// The sales report endpoint speaks day-month-year dates, unlike the rest of
// the API.
const salesDateLayout = "02.01.2006"

type salesXML struct {
	Days []struct {
		Date  string `xml:"date"`
		Value string `xml:"value"`
	} `xml:"dayDishValue"`
}

// SalesByDay fetches the department's revenue per calendar date between from
// and to, inclusive. Keys are midnight UTC.
func (c *Client) SalesByDay(ctx context.Context, departmentID string, from, to time.Time) (map[time.Time]decimal.Decimal, error) {
	params := url.Values{}
	params.Set("department", departmentID)
	params.Set("dateFrom", from.Format(salesDateLayout))
	params.Set("dateTo", to.Format(salesDateLayout))
	params.Set("allRevenue", "false")

	var payload salesXML
	if err := c.getXML(ctx, "/resto/api/reports/sales", params, &payload); err != nil {
		return nil, err
	}

	revenue := make(map[time.Time]decimal.Decimal, len(payload.Days))
	for _, day := range payload.Days {
		date, err := time.ParseInLocation(salesDateLayout, day.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("sales report date %q: %w", day.Date, err)
		}
		value, err := decimal.NewFromString(day.Value)
		if err != nil {
			return nil, fmt.Errorf("sales report value %q: %w", day.Value, err)
		}
		revenue[date] = value
	}
	return revenue, nil
}
