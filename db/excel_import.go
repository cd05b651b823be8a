package db

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"groupform-server-go/models"
)

// ImportRosterFromExcel reads students from the first sheet of an xlsx stream.
// Row 1 is a header; column A holds the name and column B the score. Rows with
// a missing name or a non-numeric score are skipped; NaN and infinite scores
// count as non-numeric since they cannot be ranked.
func ImportRosterFromExcel(file io.Reader, logger *zap.Logger) ([]models.Student, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("error closing excel file", zap.Error(err))
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	students := make([]models.Student, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // Skip header row
		}

		var name, rawScore string
		if len(row) > 0 {
			name = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			rawScore = strings.TrimSpace(row[1])
		}

		if name == "" {
			logger.Warn("skipping row without a name", zap.Int("row", i+1))
			continue
		}
		score, err := strconv.ParseFloat(rawScore, 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			logger.Warn("skipping row with a non-numeric score",
				zap.Int("row", i+1), zap.String("name", name), zap.String("score", rawScore))
			continue
		}

		students = append(students, models.Student{Name: name, Score: score})
	}

	logger.Info("imported roster", zap.String("sheet", sheetName), zap.Int("students", len(students)))
	return students, nil
}
