package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/trimly-app/survey-api/internal/models"
)

// ExportStore is the read-only slice of the store used for CSV downloads.
type ExportStore interface {
	ListCustomerResponses() ([]*models.CustomerResponse, error)
	ListBarberResponses() ([]*models.BarberResponse, error)
}

// ExportService renders full response collections as CSV for the dashboard
// download button. Multi-choice fields are emitted in their stored joined
// form so a row round-trips through a spreadsheet unchanged.
type ExportService struct {
	store ExportStore
}

func NewExportService(store ExportStore) *ExportService {
	return &ExportService{store: store}
}

// Export kinds, selecting which table a CSV download covers.
const (
	ExportCustomer = "customer"
	ExportBarber   = "barber"
)

// Export returns the CSV bytes and suggested filename for the given kind.
func (s *ExportService) Export(kind string) ([]byte, string, error) {
	switch kind {
	case ExportCustomer:
		rows, err := s.store.ListCustomerResponses()
		if err != nil {
			return nil, "", err
		}
		b, err := CustomerCSV(rows)
		return b, "customer_responses.csv", err
	case ExportBarber:
		rows, err := s.store.ListBarberResponses()
		if err != nil {
			return nil, "", err
		}
		b, err := BarberCSV(rows)
		return b, "barber_responses.csv", err
	default:
		return nil, "", NewInvalidError("unsupported export kind")
	}
}

var customerCSVHeader = []string{
	"id", "timestamp",
	"age", "gender", "domicile", "domicile_other", "haircut_frequency",
	"barbershop_choice", "important_factors", "when_full",
	"pain_wa_response", "pain_time_confusion", "pain_still_wait",
	"pain_queue_overlap", "pain_barber_forget", "pain_unknown_barber",
	"interest_wait_anywhere", "interest_choose_barber", "interest_queue_time", "interest_notification",
	"promo_types", "will_download_for_promo", "want_comparison_app",
	"wa_booking_issue", "important_features", "will_try_trimly",
}

func CustomerCSV(rows []*models.CustomerResponse) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(customerCSVHeader)
	for _, r := range rows {
		rec := []string{
			strconv.FormatInt(r.ID, 10),
			r.Timestamp.UTC().Format(time.RFC3339),
			r.Age, r.Gender, r.Domicile, r.DomicileOther, r.HaircutFrequency,
			r.BarbershopChoice, r.ImportantFactors.Join(), r.WhenFull,
			r.PainWAResponse, r.PainTimeConfusion, r.PainStillWait,
			r.PainQueueOverlap, r.PainBarberForget, r.PainUnknownBarber,
			r.InterestWaitAnywhere, r.InterestChooseBarber, r.InterestQueueTime, r.InterestNotification,
			r.PromoTypes.Join(), r.WillDownloadForPromo, r.WantComparisonApp,
			r.WABookingIssue, r.ImportantFeatures, r.WillTryTrimly,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

var barberCSVHeader = []string{
	"id", "timestamp",
	"business_name", "location", "location_other",
	"years_operating", "number_of_barbers", "customers_per_day",
	"customer_arrival_method", "common_problems", "customer_source", "customer_source_other",
	"interest_no_monthly_fee", "importance_schedule", "importance_wait_anywhere",
	"importance_queue_app", "want_auto_notification",
	"willing_partnership_promo", "important_promo_features",
	"biggest_challenge", "must_have_features", "willing_try_trimly",
}

func BarberCSV(rows []*models.BarberResponse) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(barberCSVHeader)
	for _, r := range rows {
		rec := []string{
			strconv.FormatInt(r.ID, 10),
			r.Timestamp.UTC().Format(time.RFC3339),
			r.BusinessName, r.Location, r.LocationOther,
			r.YearsOperating, r.NumberOfBarbers, r.CustomersPerDay,
			r.CustomerArrivalMethod.Join(), r.CommonProblems.Join(), r.CustomerSource, r.CustomerSourceOther,
			r.InterestNoMonthlyFee, r.ImportanceSchedule, r.ImportanceWaitAnywhere,
			r.ImportanceQueueApp, r.WantAutoNotification,
			r.WillingPartnershipPromo, r.ImportantPromoFeatures.Join(),
			r.BiggestChallenge, r.MustHaveFeatures, r.WillingTryTrimly,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
