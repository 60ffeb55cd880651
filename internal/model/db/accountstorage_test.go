package db

import (
	"context"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	types "ledgerbot/internal/model/bottypes"
)

func Test_AccountStorage_AppendTransaction(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccountStorage(db)

	tests := []struct {
		name    string
		s       *AccountStorage
		id      types.AccountID
		tx      types.Transaction
		mock    func()
		wantErr bool
	}{
		{
			name: "Должно быть без ошибок",
			s:    s,
			id:   "chat:-1001",
			tx: types.Transaction{
				Kind:       types.Deposit,
				Amount:     decimal.RequireFromString("100.50"),
				Currency:   types.CNY,
				RecordedAt: "2024-05-17 12:30:45",
			},
			mock: func() {
				mock.ExpectExec("INSERT INTO transactions").
					WillReturnResult(sqlxmock.NewResult(1, 1))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			err := tt.s.AppendTransaction(ctx, tt.id, tt.tx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: error = %v, wantErr %v", err, tt.wantErr)
				return
			}
		})
	}
}

func Test_AccountStorage_Transactions(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccountStorage(db)

	tests := []struct {
		name     string
		s        *AccountStorage
		id       types.AccountID
		fragment string
		mock     func()
		wantLen  int
		wantErr  bool
	}{
		{
			name:     "Тест 1. Полная история в порядке добавления.",
			s:        s,
			id:       "chat:-1001",
			fragment: "",
			mock: func() {
				rows := sqlxmock.NewRows([]string{"kind", "amount", "currency", "recorded_at"}).
					AddRow("deposit", "100.50", "CNY", "2024-05-17 12:30:45").
					AddRow("withdrawal", "30", "CNY", "2024-05-17 13:00:00")
				mock.ExpectQuery("SELECT kind, amount, currency, recorded_at").
					WithArgs("chat:-1001", "").WillReturnRows(rows)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name:     "Тест 2. Отбор по фрагменту времени.",
			s:        s,
			id:       "chat:-1001",
			fragment: "2024-05-17 12",
			mock: func() {
				rows := sqlxmock.NewRows([]string{"kind", "amount", "currency", "recorded_at"}).
					AddRow("deposit", "100.50", "CNY", "2024-05-17 12:30:45")
				mock.ExpectQuery("SELECT kind, amount, currency, recorded_at").
					WithArgs("chat:-1001", "2024-05-17 12").WillReturnRows(rows)
			},
			wantLen: 1,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			got, err := tt.s.Transactions(ctx, tt.id, tt.fragment)
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && len(got) != tt.wantLen {
				t.Errorf("Не совпало ожидание количества записей: got %v, want %v", len(got), tt.wantLen)
			}
		})
	}
}

func Test_AccountStorage_DeleteByTimeFragment(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccountStorage(db)

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs("chat:-1001", "2024-05-17").
		WillReturnResult(sqlxmock.NewResult(0, 2))

	removed, err := s.DeleteByTimeFragment(ctx, "chat:-1001", "2024-05-17")
	if err != nil {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
	if removed != 2 {
		t.Errorf("Не совпало ожидание количества удаленных: got %v, want 2", removed)
	}

	// Повторное удаление: совпадений нет, не ошибка.
	mock.ExpectExec("DELETE FROM transactions").
		WithArgs("chat:-1001", "2024-05-17").
		WillReturnResult(sqlxmock.NewResult(0, 0))

	removed, err = s.DeleteByTimeFragment(ctx, "chat:-1001", "2024-05-17")
	if err != nil {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
	if removed != 0 {
		t.Errorf("Не совпало ожидание количества удаленных: got %v, want 0", removed)
	}
}

func Test_AccountStorage_Settings_NotConfigured(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccountStorage(db)

	rows := sqlxmock.NewRows([]string{"time_zone", "currency"})
	mock.ExpectQuery(regexp.QuoteMeta("SELECT time_zone, currency FROM accounts WHERE id = $1;")).
		WithArgs("user:42").WillReturnRows(rows)

	_, ok, err := s.Settings(ctx, "user:42")
	if err != nil {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
	if ok {
		t.Errorf("Ожидалось отсутствие настроек (ok=false)")
	}
}

func Test_AccountStorage_Settings_Configured(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccountStorage(db)

	rows := sqlxmock.NewRows([]string{"time_zone", "currency"}).AddRow("Asia/Shanghai", "CNY")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT time_zone, currency FROM accounts WHERE id = $1;")).
		WithArgs("user:42").WillReturnRows(rows)

	settings, ok, err := s.Settings(ctx, "user:42")
	if err != nil {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
	if !ok {
		t.Errorf("Ожидалось наличие настроек (ok=true)")
	}
	if settings.TimeZone != "Asia/Shanghai" || settings.Currency != types.CNY {
		t.Errorf("Не совпали настройки: %+v", settings)
	}
}
