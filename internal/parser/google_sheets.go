package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Beka01247/bistro-api/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// menu sheet layout: title, category, price, description, image
const readRange = "A:E"

var ErrEmptySheet = errors.New("no data found in spreadsheet")

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(ctx context.Context, cfg Config) (*GoogleSheetsParser, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseMenu(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return parseRows(resp.Values)
}

// parseRows turns sheet rows into menu items. The first row is a header. A
// row holding only a title opens a category used by the rows below it that
// leave their own category blank.
func parseRows(rows [][]interface{}) ([]domain.MenuItem, error) {
	if len(rows) <= 1 {
		return nil, ErrEmptySheet
	}

	items := []domain.MenuItem{}
	var currentCategory string

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		title := cell(row, 0)
		if title == "" {
			continue
		}

		// category row
		if cell(row, 1) == "" && cell(row, 2) == "" {
			currentCategory = strings.ToLower(title)
			continue
		}

		item := domain.MenuItem{
			Title:       title,
			Category:    strings.ToLower(cell(row, 1)),
			Description: cell(row, 3),
			Image:       cell(row, 4),
		}
		if item.Category == "" {
			item.Category = currentCategory
		}

		price, err := strconv.ParseFloat(cell(row, 2), 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("%w: row %d: invalid price %q", domain.ErrValidation, i+1, cell(row, 2))
		}
		item.Price = price

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrEmptySheet
	}

	return items, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}
