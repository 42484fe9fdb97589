package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ppiankov/cardiorisk/internal/model"
)

// ConsentHeader lists the consent log columns.
var ConsentHeader = []string{
	"id", "created_at", "region", "age", "gender", "ap_hi", "ap_lo",
	"cholesterol", "gluc", "bmi", "smoke", "alco", "active",
	"risk_percent", "category",
}

// WriteConsentCSV writes consent records with absent values left empty.
func WriteConsentCSV(w io.Writer, records []model.ConsentRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ConsentHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Region,
			raw(r.Age), raw(r.Gender), raw(r.Systolic), raw(r.Diastolic),
			raw(r.Cholesterol), raw(r.Glucose), raw(r.BMI),
			raw(r.Smoke), raw(r.Alcohol), raw(r.Active),
			raw(r.RiskPercent),
			r.Category,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write consent row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func raw(n model.NullFloat) string {
	v, ok := n.Get()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
