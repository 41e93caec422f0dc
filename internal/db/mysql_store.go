package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trimly-app/survey-api/internal/api"
	"github.com/trimly-app/survey-api/internal/models"
)

var _ api.Store = (*MySQLStore)(nil)

// MySQLStore persists survey responses and admin credentials in MySQL. Every
// statement is parameterized and autocommitted; driver errors propagate to
// the caller unchanged.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) (*MySQLStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return &MySQLStore{db: db}, nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullChoices(c models.ChoiceList) sql.NullString {
	return toNullString(c.Join())
}

func insertResult(res sql.Result) (*models.InsertResult, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert id: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	return &models.InsertResult{InsertID: id, AffectedRows: affected}, nil
}

const customerColumns = `age, gender, domicile, domicile_other, haircut_frequency,
    barbershop_choice, important_factors, when_full,
    pain_wa_response, pain_time_confusion, pain_still_wait,
    pain_queue_overlap, pain_barber_forget, pain_unknown_barber,
    interest_wait_anywhere, interest_choose_barber, interest_queue_time, interest_notification,
    promo_types, will_download_for_promo, want_comparison_app,
    wa_booking_issue, important_features, will_try_trimly`

func (s *MySQLStore) InsertCustomerResponse(r *models.CustomerResponse) (*models.InsertResult, error) {
	if r == nil {
		return nil, errors.New("nil customer response")
	}
	res, err := s.db.Exec(`INSERT INTO customer_responses (`+customerColumns+`)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		toNullString(r.Age), toNullString(r.Gender), toNullString(r.Domicile),
		toNullString(r.DomicileOther), toNullString(r.HaircutFrequency),
		toNullString(r.BarbershopChoice), toNullChoices(r.ImportantFactors), toNullString(r.WhenFull),
		toNullString(r.PainWAResponse), toNullString(r.PainTimeConfusion), toNullString(r.PainStillWait),
		toNullString(r.PainQueueOverlap), toNullString(r.PainBarberForget), toNullString(r.PainUnknownBarber),
		toNullString(r.InterestWaitAnywhere), toNullString(r.InterestChooseBarber),
		toNullString(r.InterestQueueTime), toNullString(r.InterestNotification),
		toNullChoices(r.PromoTypes), toNullString(r.WillDownloadForPromo), toNullString(r.WantComparisonApp),
		toNullString(r.WABookingIssue), toNullString(r.ImportantFeatures), toNullString(r.WillTryTrimly))
	if err != nil {
		return nil, fmt.Errorf("insert customer response: %w", err)
	}
	return insertResult(res)
}

func (s *MySQLStore) ListCustomerResponses() ([]*models.CustomerResponse, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, ` + customerColumns + `
      FROM customer_responses ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list customer responses: %w", err)
	}
	defer rows.Close()

	out := []*models.CustomerResponse{}
	for rows.Next() {
		var (
			r  models.CustomerResponse
			ts sql.NullTime
			c  [24]sql.NullString
		)
		if err := rows.Scan(&r.ID, &ts,
			&c[0], &c[1], &c[2], &c[3], &c[4],
			&c[5], &c[6], &c[7],
			&c[8], &c[9], &c[10], &c[11], &c[12], &c[13],
			&c[14], &c[15], &c[16], &c[17],
			&c[18], &c[19], &c[20],
			&c[21], &c[22], &c[23]); err != nil {
			return nil, fmt.Errorf("scan customer response: %w", err)
		}
		if ts.Valid {
			r.Timestamp = ts.Time
		}
		r.Age, r.Gender, r.Domicile = c[0].String, c[1].String, c[2].String
		r.DomicileOther, r.HaircutFrequency = c[3].String, c[4].String
		r.BarbershopChoice = c[5].String
		r.ImportantFactors = models.SplitChoices(c[6].String)
		r.WhenFull = c[7].String
		r.PainWAResponse, r.PainTimeConfusion, r.PainStillWait = c[8].String, c[9].String, c[10].String
		r.PainQueueOverlap, r.PainBarberForget, r.PainUnknownBarber = c[11].String, c[12].String, c[13].String
		r.InterestWaitAnywhere, r.InterestChooseBarber = c[14].String, c[15].String
		r.InterestQueueTime, r.InterestNotification = c[16].String, c[17].String
		r.PromoTypes = models.SplitChoices(c[18].String)
		r.WillDownloadForPromo, r.WantComparisonApp = c[19].String, c[20].String
		r.WABookingIssue, r.ImportantFeatures, r.WillTryTrimly = c[21].String, c[22].String, c[23].String
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer responses: %w", err)
	}
	return out, nil
}

const barberColumns = `business_name, location, location_other,
    years_operating, number_of_barbers, customers_per_day,
    customer_arrival_method, common_problems, customer_source, customer_source_other,
    interest_no_monthly_fee, importance_schedule, importance_wait_anywhere,
    importance_queue_app, want_auto_notification,
    willing_partnership_promo, important_promo_features,
    biggest_challenge, must_have_features, willing_try_trimly`

func (s *MySQLStore) InsertBarberResponse(r *models.BarberResponse) (*models.InsertResult, error) {
	if r == nil {
		return nil, errors.New("nil barber response")
	}
	res, err := s.db.Exec(`INSERT INTO barber_responses (`+barberColumns+`)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		toNullString(r.BusinessName), toNullString(r.Location), toNullString(r.LocationOther),
		toNullString(r.YearsOperating), toNullString(r.NumberOfBarbers), toNullString(r.CustomersPerDay),
		toNullChoices(r.CustomerArrivalMethod), toNullChoices(r.CommonProblems),
		toNullString(r.CustomerSource), toNullString(r.CustomerSourceOther),
		toNullString(r.InterestNoMonthlyFee), toNullString(r.ImportanceSchedule),
		toNullString(r.ImportanceWaitAnywhere), toNullString(r.ImportanceQueueApp),
		toNullString(r.WantAutoNotification),
		toNullString(r.WillingPartnershipPromo), toNullChoices(r.ImportantPromoFeatures),
		toNullString(r.BiggestChallenge), toNullString(r.MustHaveFeatures), toNullString(r.WillingTryTrimly))
	if err != nil {
		return nil, fmt.Errorf("insert barber response: %w", err)
	}
	return insertResult(res)
}

func (s *MySQLStore) ListBarberResponses() ([]*models.BarberResponse, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, ` + barberColumns + `
      FROM barber_responses ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list barber responses: %w", err)
	}
	defer rows.Close()

	out := []*models.BarberResponse{}
	for rows.Next() {
		var (
			r  models.BarberResponse
			ts sql.NullTime
			c  [20]sql.NullString
		)
		if err := rows.Scan(&r.ID, &ts,
			&c[0], &c[1], &c[2],
			&c[3], &c[4], &c[5],
			&c[6], &c[7], &c[8], &c[9],
			&c[10], &c[11], &c[12], &c[13], &c[14],
			&c[15], &c[16],
			&c[17], &c[18], &c[19]); err != nil {
			return nil, fmt.Errorf("scan barber response: %w", err)
		}
		if ts.Valid {
			r.Timestamp = ts.Time
		}
		r.BusinessName, r.Location, r.LocationOther = c[0].String, c[1].String, c[2].String
		r.YearsOperating, r.NumberOfBarbers, r.CustomersPerDay = c[3].String, c[4].String, c[5].String
		r.CustomerArrivalMethod = models.SplitChoices(c[6].String)
		r.CommonProblems = models.SplitChoices(c[7].String)
		r.CustomerSource, r.CustomerSourceOther = c[8].String, c[9].String
		r.InterestNoMonthlyFee, r.ImportanceSchedule = c[10].String, c[11].String
		r.ImportanceWaitAnywhere, r.ImportanceQueueApp = c[12].String, c[13].String
		r.WantAutoNotification = c[14].String
		r.WillingPartnershipPromo = c[15].String
		r.ImportantPromoFeatures = models.SplitChoices(c[16].String)
		r.BiggestChallenge, r.MustHaveFeatures, r.WillingTryTrimly = c[17].String, c[18].String, c[19].String
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate barber responses: %w", err)
	}
	return out, nil
}

func (s *MySQLStore) FindAdminByUsername(username string) (*models.AdminUser, error) {
	row := s.db.QueryRow(`SELECT id, username, pass_hash, created_at FROM admin_users WHERE username = ?`, username)
	var (
		u       models.AdminUser
		hash    string
		created sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Username, &hash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find admin %q: %w", username, err)
	}
	u.PassHash = []byte(hash)
	if created.Valid {
		u.CreatedAt = created.Time
	}
	return &u, nil
}

func (s *MySQLStore) CreateAdmin(u *models.AdminUser) error {
	if u == nil || strings.TrimSpace(u.Username) == "" {
		return errors.New("invalid admin user")
	}
	if _, err := s.db.Exec(`INSERT INTO admin_users (username, pass_hash) VALUES (?, ?)`,
		u.Username, string(u.PassHash)); err != nil {
		return fmt.Errorf("create admin %q: %w", u.Username, err)
	}
	return nil
}
