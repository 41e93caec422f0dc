package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/trimly-app/survey-api/internal/models"
)

func TestExportCustomerCSV(t *testing.T) {
	store := &stubAnalyticsStore{customers: []*models.CustomerResponse{
		{
			ID:               7,
			Timestamp:        time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
			Age:              "18-24",
			ImportantFactors: models.ChoiceList{"Harga", "Kualitas"},
			WillTryTrimly:    "Ya",
		},
	}}
	svc := NewExportService(store)

	data, filename, err := svc.Export(ExportCustomer)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if filename != "customer_responses.csv" {
		t.Fatalf("filename = %q", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	header, row := records[0], records[1]
	if len(row) != len(header) {
		t.Fatalf("row has %d columns, header has %d", len(row), len(header))
	}
	cols := map[string]string{}
	for i, name := range header {
		cols[name] = row[i]
	}
	if cols["id"] != "7" {
		t.Fatalf("id column = %q", cols["id"])
	}
	if cols["timestamp"] != "2025-06-01T10:30:00Z" {
		t.Fatalf("timestamp column = %q", cols["timestamp"])
	}
	if cols["important_factors"] != "Harga, Kualitas" {
		t.Fatalf("important_factors column = %q", cols["important_factors"])
	}
}

func TestExportBarberCSV(t *testing.T) {
	store := &stubAnalyticsStore{barbers: []*models.BarberResponse{
		{
			ID:                    3,
			Timestamp:             time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
			BusinessName:          "Cukur Bro",
			CustomerArrivalMethod: models.ChoiceList{"Walk-in", "WhatsApp"},
		},
	}}
	svc := NewExportService(store)

	data, filename, err := svc.Export(ExportBarber)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if filename != "barber_responses.csv" {
		t.Fatalf("filename = %q", filename)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	cols := map[string]string{}
	for i, name := range records[0] {
		cols[name] = records[1][i]
	}
	if cols["business_name"] != "Cukur Bro" {
		t.Fatalf("business_name column = %q", cols["business_name"])
	}
	if cols["customer_arrival_method"] != "Walk-in, WhatsApp" {
		t.Fatalf("customer_arrival_method column = %q", cols["customer_arrival_method"])
	}
}

func TestExportUnsupportedKind(t *testing.T) {
	svc := NewExportService(&stubAnalyticsStore{})
	_, _, err := svc.Export("supplier")
	se, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if se.Code != ErrorInvalid {
		t.Fatalf("code = %q, want %q", se.Code, ErrorInvalid)
	}
}
