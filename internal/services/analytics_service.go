package services

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/trimly-app/survey-api/internal/models"
)

// AnalyticsStore is the read-only slice of the store the dashboard needs.
type AnalyticsStore interface {
	ListCustomerResponses() ([]*models.CustomerResponse, error)
	ListBarberResponses() ([]*models.BarberResponse, error)
}

// AnalyticsService recomputes chart-ready aggregates over the full response
// collections on every call. Nothing is cached; row counts are expected to
// stay small.
type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// NameValue is one bar or pie slice: a distinct observed value and how many
// responses carried it.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CountOccurrences tallies exact non-empty values. Pairs come out in
// first-occurrence order, unsorted.
func CountOccurrences(values []string) []NameValue {
	counts := map[string]int{}
	order := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	out := make([]NameValue, 0, len(order))
	for _, name := range order {
		out = append(out, NameValue{Name: name, Value: counts[name]})
	}
	return out
}

// CountMultipleChoices tallies the individual selections inside delimited
// multi-choice values. Each value is split on commas with per-token trimming,
// so both "A, B" and "A,B" contribute A and B. Output is sorted descending by
// count; ties keep first-occurrence order.
func CountMultipleChoices(values []string) []NameValue {
	counts := map[string]int{}
	order := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		for _, token := range strings.Split(v, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}
	out := make([]NameValue, 0, len(order))
	for _, name := range order {
		out = append(out, NameValue{Name: name, Value: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// CalculateAverageScore averages the values that parse as integers and
// formats the mean with exactly two decimals. Unparseable values are skipped;
// with no parseable value at all the result is the string "0".
func CalculateAverageScore(values []string) string {
	total, count := 0, 0
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		total += n
		count++
	}
	if count == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(total)/float64(count), 'f', 2, 64)
}

// PainScores are the six pain-point rating averages, each a two-decimal
// string (or "0" with no data).
type PainScores struct {
	WAResponse    string `json:"wa_response"`
	TimeConfusion string `json:"time_confusion"`
	StillWait     string `json:"still_wait"`
	QueueOverlap  string `json:"queue_overlap"`
	BarberForget  string `json:"barber_forget"`
	UnknownBarber string `json:"unknown_barber"`
}

// CustomerStats carries every chart series the customer dashboard renders.
type CustomerStats struct {
	AgeData       []NameValue `json:"ageData"`
	GenderData    []NameValue `json:"genderData"`
	DomicileData  []NameValue `json:"domicileData"`
	FrequencyData []NameValue `json:"frequencyData"`

	BarbershopChoiceData []NameValue `json:"barbershopChoiceData"`
	ImportantFactorsData []NameValue `json:"importantFactorsData"`
	WhenFullData         []NameValue `json:"whenFullData"`

	PainScores PainScores `json:"painScores"`

	InterestWaitData   []NameValue `json:"interestWaitData"`
	InterestChooseData []NameValue `json:"interestChooseData"`
	InterestQueueData  []NameValue `json:"interestQueueData"`
	InterestNotifData  []NameValue `json:"interestNotifData"`

	PromoTypesData     []NameValue `json:"promoTypesData"`
	WillDownloadData   []NameValue `json:"willDownloadData"`
	WantComparisonData []NameValue `json:"wantComparisonData"`

	WillTryTrimlyData []NameValue `json:"willTryTrimlyData"`
}

// BarberStats carries every chart series the barber dashboard renders.
type BarberStats struct {
	LocationData        []NameValue `json:"locationData"`
	YearsData           []NameValue `json:"yearsData"`
	BarbersData         []NameValue `json:"barbersData"`
	CustomersPerDayData []NameValue `json:"customersPerDayData"`

	ArrivalMethodData  []NameValue `json:"arrivalMethodData"`
	ProblemsData       []NameValue `json:"problemsData"`
	CustomerSourceData []NameValue `json:"customerSourceData"`

	InterestNoFeeData      []NameValue `json:"interestNoFeeData"`
	ScheduleImportanceData []NameValue `json:"scheduleImportanceData"`
	WaitAnywhereData       []NameValue `json:"waitAnywhereData"`
	QueueAppData           []NameValue `json:"queueAppData"`
	NotificationData       []NameValue `json:"notificationData"`

	PartnershipData   []NameValue `json:"partnershipData"`
	PromoFeaturesData []NameValue `json:"promoFeaturesData"`

	WillTryTrimlyData []NameValue `json:"willTryTrimlyData"`
}

// CustomerSummary aggregates every stored customer response into chart
// series. An empty collection short-circuits to a zero-valued summary.
func (s *AnalyticsService) CustomerSummary() (int, *CustomerStats, error) {
	rows, err := s.store.ListCustomerResponses()
	if err != nil {
		return 0, nil, err
	}
	return len(rows), BuildCustomerStats(rows), nil
}

// BarberSummary is the barber-side counterpart of CustomerSummary.
func (s *AnalyticsService) BarberSummary() (int, *BarberStats, error) {
	rows, err := s.store.ListBarberResponses()
	if err != nil {
		return 0, nil, err
	}
	return len(rows), BuildBarberStats(rows), nil
}

func BuildCustomerStats(rows []*models.CustomerResponse) *CustomerStats {
	stats := &CustomerStats{
		PainScores: PainScores{
			WAResponse:    "0",
			TimeConfusion: "0",
			StillWait:     "0",
			QueueOverlap:  "0",
			BarberForget:  "0",
			UnknownBarber: "0",
		},
	}
	if len(rows) == 0 {
		log.Printf("analytics: no customer data to calculate stats")
		return stats
	}

	vals := func(get func(*models.CustomerResponse) string) []string {
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, get(r))
		}
		return out
	}

	stats.AgeData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.Age }))
	stats.GenderData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.Gender }))
	stats.DomicileData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.Domicile }))
	stats.FrequencyData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.HaircutFrequency }))

	stats.BarbershopChoiceData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.BarbershopChoice }))
	stats.ImportantFactorsData = CountMultipleChoices(vals(func(r *models.CustomerResponse) string { return r.ImportantFactors.Join() }))
	stats.WhenFullData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.WhenFull }))

	stats.PainScores = PainScores{
		WAResponse:    CalculateAverageScore(vals(func(r *models.CustomerResponse) string { return r.PainWAResponse })),
		TimeConfusion: CalculateAverageScore(vals(func(r *models.CustomerResponse) string { return r.PainTimeConfusion })),
		StillWait:     CalculateAverageScore(vals(func(r *models.CustomerResponse) string { return r.PainStillWait })),
		QueueOverlap:  CalculateAverageScore(vals(func(r *models.CustomerResponse) string { return r.PainQueueOverlap })),
		BarberForget:  CalculateAverageScore(vals(func(r *models.CustomerResponse) string { return r.PainBarberForget })),
		UnknownBarber: CalculateAverageScore(vals(func(r *models.CustomerResponse) string { return r.PainUnknownBarber })),
	}

	stats.InterestWaitData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.InterestWaitAnywhere }))
	stats.InterestChooseData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.InterestChooseBarber }))
	stats.InterestQueueData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.InterestQueueTime }))
	stats.InterestNotifData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.InterestNotification }))

	stats.PromoTypesData = CountMultipleChoices(vals(func(r *models.CustomerResponse) string { return r.PromoTypes.Join() }))
	stats.WillDownloadData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.WillDownloadForPromo }))
	stats.WantComparisonData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.WantComparisonApp }))

	stats.WillTryTrimlyData = CountOccurrences(vals(func(r *models.CustomerResponse) string { return r.WillTryTrimly }))
	return stats
}

func BuildBarberStats(rows []*models.BarberResponse) *BarberStats {
	stats := &BarberStats{}
	if len(rows) == 0 {
		log.Printf("analytics: no barber data to calculate stats")
		return stats
	}

	vals := func(get func(*models.BarberResponse) string) []string {
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, get(r))
		}
		return out
	}

	stats.LocationData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.Location }))
	stats.YearsData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.YearsOperating }))
	stats.BarbersData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.NumberOfBarbers }))
	stats.CustomersPerDayData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.CustomersPerDay }))

	stats.ArrivalMethodData = CountMultipleChoices(vals(func(r *models.BarberResponse) string { return r.CustomerArrivalMethod.Join() }))
	stats.ProblemsData = CountMultipleChoices(vals(func(r *models.BarberResponse) string { return r.CommonProblems.Join() }))
	stats.CustomerSourceData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.CustomerSource }))

	stats.InterestNoFeeData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.InterestNoMonthlyFee }))
	stats.ScheduleImportanceData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.ImportanceSchedule }))
	stats.WaitAnywhereData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.ImportanceWaitAnywhere }))
	stats.QueueAppData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.ImportanceQueueApp }))
	stats.NotificationData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.WantAutoNotification }))

	stats.PartnershipData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.WillingPartnershipPromo }))
	stats.PromoFeaturesData = CountMultipleChoices(vals(func(r *models.BarberResponse) string { return r.ImportantPromoFeatures.Join() }))

	stats.WillTryTrimlyData = CountOccurrences(vals(func(r *models.BarberResponse) string { return r.WillingTryTrimly }))
	return stats
}
