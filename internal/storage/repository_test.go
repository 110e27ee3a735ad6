package storage

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sppulse/sppulse/internal/domain/models"
)

func newMockRepo(t *testing.T) (*pricesRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &pricesRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestGetPriceWindow_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	// Match the final SELECT shape without being brittle about whitespace
	selectRegex := `SELECT\s+\(SELECT open\s+FROM daily_prices WHERE symbol = \$1 AND day = \$2\) AS open_at_start,\s*\(SELECT close FROM daily_prices WHERE symbol = \$1 AND day = \$3\) AS close_at_end`

	start := time.Date(2013, 2, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 2, 7, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		open    interface{}
		close   interface{}
		wantNil bool
	}{
		{name: "both prices", open: 67.71, close: 159.54, wantNil: false},
		{name: "no start price", open: nil, close: 159.54, wantNil: true},
		{name: "no end price", open: 67.71, close: nil, wantNil: true},
		{name: "no data", open: nil, close: nil, wantNil: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := sqlmock.NewRows([]string{"open_at_start", "close_at_end"}).AddRow(tc.open, tc.close)
			mock.ExpectQuery(selectRegex).
				WithArgs("AAPL", start, end).
				WillReturnRows(rows)

			out, err := repo.GetPriceWindow("AAPL", start, end)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.wantNil {
				if out != nil {
					t.Fatalf("want nil window, got %+v", out)
				}
				return
			}
			if out == nil || out.OpenAtStart != 67.71 || out.CloseAtEnd != 159.54 {
				t.Fatalf("unexpected window %+v", out)
			}
		})
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHasIngestionForFile(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	q := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE filename = $1)`)
	mock.ExpectQuery(q).
		WithArgs("all_stocks_5yr.csv").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.HasIngestionForFile("all_stocks_5yr.csv")
	if err != nil || !got {
		t.Fatalf("want true,nil got %v,%v", got, err)
	}
}

func TestUpsertIngestionLog(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`INSERT INTO ingestion_log`).
		WithArgs("all_stocks_5yr.csv", 619029).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertIngestionLog("all_stocks_5yr.csv", 619029); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDeletePricesBySource(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM daily_prices WHERE source_file = $1`)).
		WithArgs("all_stocks_5yr.csv").
		WillReturnResult(sqlmock.NewResult(0, 12))

	if err := repo.DeletePricesBySource("all_stocks_5yr.csv"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestGetTickerCounts(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	rows := sqlmock.NewRows([]string{"symbol", "count"}).
		AddRow("AAL", 1259).
		AddRow("AAPL", 1259).
		AddRow("APTV", 323)
	mock.ExpectQuery(`SELECT symbol, COUNT\(\*\) FROM daily_prices GROUP BY symbol`).
		WillReturnRows(rows)

	counts, err := repo.GetTickerCounts()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(counts) != 3 || counts["AAL"] != 1259 || counts["APTV"] != 323 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestInsertPricesBatch_CopyFlow(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	open, high, low, closeP := 15.07, 15.12, 14.63, 14.75
	vol := int64(8407500)
	rec := models.PriceRecord{
		Date:   "2013-02-08",
		Day:    time.Date(2013, 2, 8, 0, 0, 0, 0, time.UTC),
		Open:   &open,
		High:   &high,
		Low:    &low,
		Close:  &closeP,
		Volume: &vol,
		Name:   "AAL",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL synchronous_commit = OFF`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(`COPY "daily_prices"`)
	mock.ExpectExec(`COPY "daily_prices"`).
		WithArgs(rec.Day, open, high, low, closeP, vol, "AAL", "all_stocks_5yr.csv").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`COPY "daily_prices"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.InsertPricesBatch("all_stocks_5yr.csv", []models.PriceRecord{rec}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInsertPricesBatch_BeginError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin().WillReturnError(errDummy{})
	if err := repo.InsertPricesBatch("f.csv", nil); err == nil {
		t.Fatalf("expected begin error")
	}
}

type errDummy struct{}

func (errDummy) Error() string { return "dummy" }
