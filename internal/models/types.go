package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ChoiceSeparator joins multi-choice selections into the single text column
// they are stored in, and is what stored values are split on when read back.
const ChoiceSeparator = ", "

// ChoiceList is a multi-choice field value. Forms submit it either as a JSON
// array of selected options or as an already-joined string; both decode to the
// same list. It always marshals as an array.
type ChoiceList []string

func (c *ChoiceList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*c = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = SplitChoices(s)
	return nil
}

func (c ChoiceList) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(c))
}

// Join renders the list as the delimited text stored in the database.
func (c ChoiceList) Join() string {
	return strings.Join(c, ChoiceSeparator)
}

// SplitChoices reverses Join: a value containing a comma splits on the
// separator, a non-empty value without one becomes a single-element list,
// and an empty value becomes an empty list.
func SplitChoices(s string) ChoiceList {
	if s == "" {
		return ChoiceList{}
	}
	if !strings.Contains(s, ",") {
		return ChoiceList{s}
	}
	return ChoiceList(strings.Split(s, ChoiceSeparator))
}

// InsertResult mirrors the driver-level outcome of a single-row insert,
// returned verbatim inside the submission success envelope.
type InsertResult struct {
	InsertID     int64 `json:"insertId"`
	AffectedRows int64 `json:"affectedRows"`
}

// CustomerResponse is the canonical customer survey record. JSON tags are the
// client-facing field names; the store maps them onto identically named
// columns. Every survey field is free text at this boundary; ratings are 1-5
// integers carried as strings. Empty strings persist as NULL.
type CustomerResponse struct {
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`

	// Profile
	Age              string `json:"age"`
	Gender           string `json:"gender"`
	Domicile         string `json:"domicile"`
	DomicileOther    string `json:"domicile_other"`
	HaircutFrequency string `json:"haircut_frequency"`

	// Habits
	BarbershopChoice string     `json:"barbershop_choice"`
	ImportantFactors ChoiceList `json:"important_factors"`
	WhenFull         string     `json:"when_full"`

	// Pain awareness, rated 1-5
	PainWAResponse    string `json:"pain_wa_response"`
	PainTimeConfusion string `json:"pain_time_confusion"`
	PainStillWait     string `json:"pain_still_wait"`
	PainQueueOverlap  string `json:"pain_queue_overlap"`
	PainBarberForget  string `json:"pain_barber_forget"`
	PainUnknownBarber string `json:"pain_unknown_barber"`

	// Online booking interest
	InterestWaitAnywhere string `json:"interest_wait_anywhere"`
	InterestChooseBarber string `json:"interest_choose_barber"`
	InterestQueueTime    string `json:"interest_queue_time"`
	InterestNotification string `json:"interest_notification"`

	// Promo
	PromoTypes           ChoiceList `json:"promo_types"`
	WillDownloadForPromo string     `json:"will_download_for_promo"`
	WantComparisonApp    string     `json:"want_comparison_app"`

	// Opinions
	WABookingIssue    string `json:"wa_booking_issue"`
	ImportantFeatures string `json:"important_features"`
	WillTryTrimly     string `json:"will_try_trimly"`
}

// BarberResponse is the canonical barbershop-owner survey record.
type BarberResponse struct {
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`

	// Business profile
	BusinessName    string `json:"business_name"`
	Location        string `json:"location"`
	LocationOther   string `json:"location_other"`
	YearsOperating  string `json:"years_operating"`
	NumberOfBarbers string `json:"number_of_barbers"`
	CustomersPerDay string `json:"customers_per_day"`

	// Operations
	CustomerArrivalMethod ChoiceList `json:"customer_arrival_method"`
	CommonProblems        ChoiceList `json:"common_problems"`
	CustomerSource        string     `json:"customer_source"`
	CustomerSourceOther   string     `json:"customer_source_other"`

	// Digital booking interest
	InterestNoMonthlyFee   string `json:"interest_no_monthly_fee"`
	ImportanceSchedule     string `json:"importance_schedule"`
	ImportanceWaitAnywhere string `json:"importance_wait_anywhere"`
	ImportanceQueueApp     string `json:"importance_queue_app"`
	WantAutoNotification   string `json:"want_auto_notification"`

	// Promotion & growth
	WillingPartnershipPromo string     `json:"willing_partnership_promo"`
	ImportantPromoFeatures  ChoiceList `json:"important_promo_features"`

	// Opinions
	BiggestChallenge string `json:"biggest_challenge"`
	MustHaveFeatures string `json:"must_have_features"`
	WillingTryTrimly string `json:"willing_try_trimly"`
}

// AdminUser is a dashboard login. Passwords are stored as bcrypt hashes only.
type AdminUser struct {
	ID        int64
	Username  string
	PassHash  []byte
	CreatedAt time.Time
}
